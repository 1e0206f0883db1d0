package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

type resourceUsage struct {
	cpu         time.Duration // utime+stime
	maxRSSBytes int64
}

func getResourceUsage() (*resourceUsage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return nil, fmt.Errorf("getrusage: %s", err)
	}
	return &resourceUsage{
		cpu:         time.Duration(ru.Utime.Nano() + ru.Stime.Nano()),
		maxRSSBytes: int64(ru.Maxrss) * 1024, // KiB on Linux
	}, nil
}

func (u *resourceUsage) String() string {
	return fmt.Sprintf(
		"cpu: %s, max RSS: %s",
		u.cpu.Round(time.Millisecond),
		humanize.Bytes(uint64(u.maxRSSBytes)),
	)
}
