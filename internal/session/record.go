package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-targets/internal/replay"
)

// Record is the finished-session data handed to persistence.
type Record struct {
	ID         string        `json:"id"`
	Code       string        `json:"code"`
	Config     replay.Config `json:"config"`
	Outcome    State         `json:"outcome"`
	TotalTime  time.Duration `json:"totalTime"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// RecordSaver persists finished sessions. Implementations own history
// ordering and capping.
type RecordSaver interface {
	SaveRecord(rec Record) error
}

func newRecord(cfg replay.Config, st State) Record {
	return Record{
		ID:         uuid.NewString(),
		Code:       cfg.Seed,
		Config:     cfg,
		Outcome:    st,
		TotalTime:  st.TotalTime(),
		FinishedAt: st.EndTime,
	}
}
