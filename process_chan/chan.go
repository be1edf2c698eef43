package process_chan

type Action string

const (
	Shutdown = Action("shutdown")
)

var ProcessChan = make(chan Action, 2)

// sendMessage drops the action when one is already pending.
func sendMessage(action Action) bool {
	select {
	case ProcessChan <- action:
		return true
	default:
		return false
	}
}

func SendShutdown() bool {
	return sendMessage(Shutdown)
}
