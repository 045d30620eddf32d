package commtypes

// TimeDomain specifies whether a timer fires based on the event-time
// watermark or on wall-clock progress.
type TimeDomain uint8

const (
	EVENT_TIME      TimeDomain = 0
	PROCESSING_TIME TimeDomain = 1
)

func (d TimeDomain) String() string {
	switch d {
	case EVENT_TIME:
		return "EVENT_TIME"
	case PROCESSING_TIME:
		return "PROCESSING_TIME"
	default:
		return "UNKNOWN"
	}
}
