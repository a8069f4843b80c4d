package combat

import "sort"

// The transition methods below mutate the receiver and report whether the
// transition applied. They return false only when the target is missing or
// the request addresses nothing, such as a turn change on an empty roster;
// the receiver is then untouched. Callers apply them to a cloned snapshot
// and persist every applied transition.

// Start moves the session into the active state at round 1, turn 0
func (s *Session) Start() bool {
	s.Status = StatusActive
	s.CurrentRound = 1
	s.CurrentTurn = 0
	return true
}

// Pause marks the session paused
func (s *Session) Pause() bool {
	return s.setStatus(StatusPaused)
}

// Resume marks the session active without touching round or turn
func (s *Session) Resume() bool {
	return s.setStatus(StatusActive)
}

// End marks the session completed
func (s *Session) End() bool {
	return s.setStatus(StatusCompleted)
}

func (s *Session) setStatus(status Status) bool {
	s.Status = status
	return true
}

// NextTurn advances the turn, wrapping to the first combatant and the next
// round after the last one. An empty roster is left alone.
func (s *Session) NextTurn() bool {
	if len(s.Combatants) == 0 {
		return false
	}

	s.CurrentTurn++
	if s.CurrentTurn >= len(s.Combatants) {
		s.CurrentTurn = 0
		s.CurrentRound++
	}
	return true
}

// PreviousTurn steps the turn back, wrapping to the last combatant. The round
// only goes back while it is above 1.
func (s *Session) PreviousTurn() bool {
	if len(s.Combatants) == 0 {
		return false
	}

	s.CurrentTurn--
	if s.CurrentTurn < 0 {
		s.CurrentTurn = len(s.Combatants) - 1
		if s.CurrentRound > 1 {
			s.CurrentRound--
		}
	}
	return true
}

// GoToTurn jumps to index when it addresses a combatant; anything else is ignored
func (s *Session) GoToTurn(index int) bool {
	if index < 0 || index >= len(s.Combatants) {
		return false
	}
	s.CurrentTurn = index
	return true
}

// AddCombatant appends c to the end of the turn order
func (s *Session) AddCombatant(c Combatant) {
	if c.Conditions == nil {
		c.Conditions = []Condition{}
	}
	s.Combatants = append(s.Combatants, c)
}

// CombatantIndex returns the roster position of id, or -1
func (s *Session) CombatantIndex(id string) int {
	for i := range s.Combatants {
		if s.Combatants[i].ID == id {
			return i
		}
	}
	return -1
}

// Combatant returns a pointer into the roster for id, or nil
func (s *Session) Combatant(id string) *Combatant {
	idx := s.CombatantIndex(id)
	if idx < 0 {
		return nil
	}
	return &s.Combatants[idx]
}

// RemoveCombatant drops id from the roster and from every group, then clamps
// the current turn into the shrunken roster
func (s *Session) RemoveCombatant(id string) bool {
	idx := s.CombatantIndex(id)
	if idx < 0 {
		return false
	}

	s.Combatants = append(s.Combatants[:idx], s.Combatants[idx+1:]...)

	for i := range s.Groups {
		s.Groups[i].CombatantIDs = removeString(s.Groups[i].CombatantIDs, id)
	}

	s.clampTurn()
	return true
}

func (s *Session) clampTurn() {
	if len(s.Combatants) == 0 {
		s.CurrentTurn = 0
		return
	}
	if s.CurrentTurn >= len(s.Combatants) {
		s.CurrentTurn = len(s.Combatants) - 1
	}
}

// SortByInitiative orders the roster by descending initiative. Ties keep their
// relative order.
func (s *Session) SortByInitiative() bool {
	sort.SliceStable(s.Combatants, func(i, j int) bool {
		return s.Combatants[i].Initiative > s.Combatants[j].Initiative
	})
	return true
}

// SetHeroPoints sets the party hero point pool, floored at 0
func (s *Session) SetHeroPoints(amount int) bool {
	s.HeroPoints = max(0, amount)
	return true
}

// SetVictoryPoints sets the victory point total, floored at 0
func (s *Session) SetVictoryPoints(amount int) bool {
	s.VictoryPoints = max(0, amount)
	return true
}

// AppendLog stamps entry with the current round and turn and appends it
func (s *Session) AppendLog(entry LogEntry) LogEntry {
	entry.Round = s.CurrentRound
	entry.Turn = s.CurrentTurn
	s.Log = append(s.Log, entry)
	return entry
}

// TickConditions counts every timed condition down by one round and drops
// the ones that run out
func (s *Session) TickConditions() bool {
	for i := range s.Combatants {
		s.Combatants[i].tickConditions()
	}
	return true
}

// AddGroup appends a group holding the given combatants. Ids not in the
// roster are skipped.
func (s *Session) AddGroup(id, name string, combatantIDs []string) Group {
	members := make([]string, 0, len(combatantIDs))
	for _, cid := range combatantIDs {
		if s.CombatantIndex(cid) >= 0 && !containsString(members, cid) {
			members = append(members, cid)
		}
	}

	group := Group{ID: id, Name: name, CombatantIDs: members}
	s.Groups = append(s.Groups, group)
	return group
}

// RemoveGroup drops the group with id
func (s *Session) RemoveGroup(id string) bool {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			s.Groups = append(s.Groups[:i], s.Groups[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyDamage spends temporary HP first, then HP, which never drops below 0.
// Negative amounts deal no damage.
func (c *Combatant) ApplyDamage(amount int) bool {
	amount = max(0, amount)

	absorbed := min(amount, c.TempHP)
	c.TempHP -= absorbed
	amount -= absorbed

	c.HP = min(max(0, c.HP-amount), c.MaxHP)
	return true
}

// ApplyHealing restores HP up to MaxHP. Negative amounts heal nothing.
func (c *Combatant) ApplyHealing(amount int) bool {
	amount = max(0, amount)

	// compare against the headroom so huge amounts cannot overflow
	if amount >= c.MaxHP-c.HP {
		c.HP = c.MaxHP
	} else {
		c.HP += amount
	}
	return true
}

// SetTempHP overwrites temporary HP, floored at 0
func (c *Combatant) SetTempHP(amount int) bool {
	c.TempHP = max(0, amount)
	return true
}

// SetInitiative records both roll components and their sum
func (c *Combatant) SetInitiative(roll1, roll2 int) bool {
	c.InitiativeRoll = [2]int{roll1, roll2}
	c.Initiative = roll1 + roll2
	return true
}

// SetMaxHP changes MaxHP and pulls HP down if it now exceeds it
func (c *Combatant) SetMaxHP(maxHP int) bool {
	c.MaxHP = maxHP
	c.HP = min(c.HP, maxHP)
	return true
}

// AddCondition appends cond
func (c *Combatant) AddCondition(cond Condition) {
	c.Conditions = append(c.Conditions, cond)
}

// RemoveCondition drops the first condition called name
func (c *Combatant) RemoveCondition(name string) bool {
	idx := c.conditionIndex(name)
	if idx < 0 {
		return false
	}
	c.Conditions = append(c.Conditions[:idx], c.Conditions[idx+1:]...)
	return true
}

// UpdateConditionDuration replaces the duration of the first condition called name
func (c *Combatant) UpdateConditionDuration(name string, duration *int) bool {
	idx := c.conditionIndex(name)
	if idx < 0 {
		return false
	}
	if duration != nil {
		d := *duration
		duration = &d
	}
	c.Conditions[idx].Duration = duration
	return true
}

// HasCondition reports whether a condition called name is active
func (c *Combatant) HasCondition(name string) bool {
	return c.conditionIndex(name) >= 0
}

func (c *Combatant) conditionIndex(name string) int {
	for i := range c.Conditions {
		if c.Conditions[i].Name == name {
			return i
		}
	}
	return -1
}

func (c *Combatant) tickConditions() {
	kept := c.Conditions[:0]
	for _, cond := range c.Conditions {
		if cond.Duration == nil {
			kept = append(kept, cond)
			continue
		}
		remaining := *cond.Duration - 1
		if remaining <= 0 {
			continue
		}
		cond.Duration = &remaining
		kept = append(kept, cond)
	}
	c.Conditions = kept
}

func removeString(values []string, target string) []string {
	out := values[:0]
	for _, v := range values {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
