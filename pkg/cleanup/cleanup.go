// Package cleanup holds a process-wide registry of shutdown jobs. Components
// that own long-lived resources register a job at construction time; main runs
// them once on the way out.
package cleanup

import "log/slog"

type Job struct {
	Name string
	F    func() error
}

var (
	jobs []*Job
)

func Register(j *Job) {
	jobs = append(jobs, j)
}

func CleanUp() {
	for _, j := range jobs {
		err := j.F()
		if err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
		} else {
			slog.Info("cleanup job finished", slog.String("job", j.Name))
		}
	}
}
