package tools

import (
	"github.com/shirou/gopsutil/v3/process"
)

type proc struct {
	pid  int
	name string
}

var processes = func() ([]proc, error) {
	list, err := process.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]proc, 0, len(list))
	for _, p := range list {
		// gone already, or not ours to read
		name, err := p.Name()
		if err != nil {
			continue
		}
		out = append(out, proc{pid: int(p.Pid), name: name})
	}
	return out, nil
}

// ProcessExists reports the lowest pid of the processes named exactly name.
func ProcessExists(name string) (pid int, exist bool) {
	list, err := processes()
	if err != nil {
		return pid, false
	}
	return lowestPid(list, name)
}

func lowestPid(list []proc, name string) (pid int, exist bool) {
	for _, p := range list {
		if p.name != name {
			continue
		}
		if !exist || p.pid < pid {
			pid, exist = p.pid, true
		}
	}
	return pid, exist
}
