package combat

// IsHero reports whether c is a hero
func (c *Combatant) IsHero() bool {
	return c.Kind == KindHero
}

// IsDefeated reports whether c is down
func (c *Combatant) IsDefeated() bool {
	return c.HP <= 0
}

// IsWinded reports whether c is standing at half HP or less
func (c *Combatant) IsWinded() bool {
	return c.HP > 0 && c.HP*2 <= c.MaxHP
}

// CurrentCombatant returns the combatant whose turn it is, or nil for an empty roster
func (s *Session) CurrentCombatant() *Combatant {
	if s.CurrentTurn < 0 || s.CurrentTurn >= len(s.Combatants) {
		return nil
	}
	return &s.Combatants[s.CurrentTurn]
}

// Heroes returns the heroes in turn order
func (s *Session) Heroes() []Combatant {
	return s.filter(KindHero)
}

// Creatures returns the creatures in turn order
func (s *Session) Creatures() []Combatant {
	return s.filter(KindCreature)
}

func (s *Session) filter(kind Kind) []Combatant {
	out := make([]Combatant, 0, len(s.Combatants))
	for _, c := range s.Combatants {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// SideSummary counts one side of the fight
type SideSummary struct {
	Standing int `json:"standing"`
	Defeated int `json:"defeated"`
	HP       int `json:"hp"`
	MaxHP    int `json:"max_hp"`
}

// Summary is a derived at-a-glance view of a session
type Summary struct {
	SessionID     string      `json:"session_id"`
	Name          string      `json:"name"`
	Status        Status      `json:"status"`
	Round         int         `json:"round"`
	Turn          int         `json:"turn"`
	Current       *Combatant  `json:"current,omitempty"`
	Heroes        SideSummary `json:"heroes"`
	Creatures     SideSummary `json:"creatures"`
	Winded        []string    `json:"winded"`
	HeroPoints    int         `json:"hero_points"`
	VictoryPoints int         `json:"victory_points"`
	LogEntries    int         `json:"log_entries"`
}

// Summarize builds the Summary of s
func (s *Session) Summarize() *Summary {
	sum := &Summary{
		SessionID:     s.ID,
		Name:          s.Name,
		Status:        s.Status,
		Round:         s.CurrentRound,
		Turn:          s.CurrentTurn,
		Winded:        []string{},
		HeroPoints:    s.HeroPoints,
		VictoryPoints: s.VictoryPoints,
		LogEntries:    len(s.Log),
	}

	if current := s.CurrentCombatant(); current != nil {
		c := current.clone()
		sum.Current = &c
	}

	for i := range s.Combatants {
		c := &s.Combatants[i]

		side := &sum.Creatures
		if c.IsHero() {
			side = &sum.Heroes
		}

		if c.IsDefeated() {
			side.Defeated++
		} else {
			side.Standing++
		}
		side.HP += c.HP
		side.MaxHP += c.MaxHP

		if c.IsWinded() {
			sum.Winded = append(sum.Winded, c.ID)
		}
	}

	return sum
}
