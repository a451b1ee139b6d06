package jobs

type JobType string

const (
	JobWelcomeEmail JobType = "welcome_email"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobWelcomeEmail:
		return true
	default:
		return false
	}
}
