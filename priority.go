package threadpool

// Priority selects which queue a job lands in. Levels are totally
// ordered: at every selection instant a worker takes the front job of
// the highest non-empty level. Within one level jobs run in submission
// order. No fairness across levels is provided; a sustained stream of
// Critical jobs starves the lower levels.
type Priority uint8

const (
	Normal Priority = iota
	High
	Critical
)

// numLevels is the fixed number of priority queues.
const numLevels = 3

func (p Priority) valid() bool { return p <= Critical }

func (p Priority) String() string {
	switch p {
	case Normal:
		return "Normal"
	case High:
		return "High"
	case Critical:
		return "Critical"
	default:
		return "Unknown"
	}
}
