package player

// Seat is a player's identity as given at construction.
type Seat struct {
	Name  string
	Color Color
}

// Registry is an arena of players addressed by their seat index. Players are
// never removed, only flagged inactive.
type Registry struct {
	players []Player
	active  int
}

func NewRegistry(seats []Seat) *Registry {
	r := &Registry{players: make([]Player, len(seats))}
	for i, s := range seats {
		r.players[i] = Player{name: s.Name, color: s.Color}
	}
	r.Reset(0)
	return r
}

func (r *Registry) Len() int { return len(r.players) }

// Get returns the player at index i; ok is false for an unknown index.
func (r *Registry) Get(i int) (p *Player, ok bool) {
	if i < 0 || i >= len(r.players) {
		return nil, false
	}
	return &r.players[i], true
}

// Colors returns every player's color in seat order.
func (r *Registry) Colors() []Color {
	colors := make([]Color, len(r.players))
	for i := range r.players {
		colors[i] = r.players[i].color
	}
	return colors
}

func (r *Registry) ActiveCount() int { return r.active }

// Active returns the indices of players still in rotation.
func (r *Registry) Active() []int {
	var ids []int
	for i := range r.players {
		if r.players[i].active {
			ids = append(ids, i)
		}
	}
	return ids
}

// Next returns the first active index after from, wrapping around.
// It panics when nobody is active since there is no valid turn to hand out.
func (r *Registry) Next(from int) int {
	if r.active == 0 {
		panic("player: no active players to rotate to")
	}
	n := len(r.players)
	i := (from + 1) % n
	for !r.players[i].active {
		i = (i + 1) % n
	}
	return i
}

// Deactivate flags player i as eliminated. It reports whether the flag
// changed, so a player is only ever counted out once.
func (r *Registry) Deactivate(i int) bool {
	p, ok := r.Get(i)
	if !ok || !p.active {
		return false
	}
	p.active = false
	r.active--
	return true
}

// Reclaim hands player i one of their own pieces back into reserve.
func (r *Registry) Reclaim(i int) {
	if p, ok := r.Get(i); ok {
		p.reserve++
	}
}

// Capture credits player i with one opponent piece.
func (r *Registry) Capture(i int) {
	if p, ok := r.Get(i); ok {
		p.captured++
	}
}

// SpendReserve takes one reserve piece from player i. It reports false and
// changes nothing when the player has none.
func (r *Registry) SpendReserve(i int) bool {
	p, ok := r.Get(i)
	if !ok || p.reserve <= 0 {
		return false
	}
	p.reserve--
	return true
}

// Reset reactivates everyone, clears captures and sets each reserve.
func (r *Registry) Reset(reserve int) {
	for i := range r.players {
		r.players[i].active = true
		r.players[i].reserve = reserve
		r.players[i].captured = 0
	}
	r.active = len(r.players)
}
