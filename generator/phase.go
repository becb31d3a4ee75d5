package generator

// Phase is a state of a generation run.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseEmitEnums
	PhaseEmitModels
	PhaseEmitBarrels
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseEmitEnums:
		return "emit-enums"
	case PhaseEmitModels:
		return "emit-models"
	case PhaseEmitBarrels:
		return "emit-barrels"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}
