package chat

import (
	orch "github.com/apetrov/coursemate/internal/chat"
)

// replyMsg is sent when the orchestrator finished handling a turn.
type replyMsg struct {
	Reply orch.Message
}
