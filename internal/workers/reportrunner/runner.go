package reportrunner

import (
	"context"
	"sync"
	"time"

	"github.com/apex/log"

	"readiness/internal/metrics"
	"readiness/internal/ports"
)

// Processor generates the report for a claimed job.
type Processor interface {
	ProcessJob(ctx context.Context, job ports.ReportJob) error
}

type Options struct {
	Concurrency  int
	PollInterval time.Duration
	Policy       ports.ClaimPolicy
}

// Run starts a dispatcher that sweeps for stuck reports every PollInterval and
// worker goroutines that process them. The returned channel closes once every
// worker has exited after ctx is cancelled.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, opts Options) <-chan struct{} {
	done := make(chan struct{})
	if opts.Concurrency < 1 {
		close(done)
		return done
	}
	jobsCh := make(chan ports.ReportJob, opts.Concurrency)

	// dispatcher loop
	go func() {
		defer close(jobsCh)
		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				claimed := sweep(ctx, repo, opts.Policy, func(job ports.ReportJob) bool {
					select {
					case jobsCh <- job:
						return true
					case <-ctx.Done():
						return false
					}
				})
				metrics.SweepClaimed.Set(float64(claimed))
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				process(ctx, processor, job, idx)
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

// sweep fails exhausted reports, then claims stuck reports and completed
// purchases that never got one, until none are left or emit refuses. It
// returns the number claimed.
func sweep(ctx context.Context, repo ports.JobRepository, policy ports.ClaimPolicy, emit func(ports.ReportJob) bool) int {
	if n, err := repo.FailExhausted(ctx, policy); err != nil {
		log.WithError(err).Error("fail exhausted reports")
	} else if n > 0 {
		log.WithField("reports", n).Warn("reports failed after exhausting attempts")
	}

	claimed := 0
	for {
		job, found, err := repo.ClaimNext(ctx, policy)
		if err == nil && !found {
			job, found, err = repo.ClaimOrphan(ctx, policy)
			if found {
				log.WithFields(log.Fields{"purchase_id": job.PurchaseID, "report_id": job.ReportID}).
					Warn("report created for purchase without one")
			}
		}
		if err != nil {
			log.WithError(err).Error("report claim error")
			return claimed
		}
		if !found {
			return claimed
		}
		claimed++
		if !emit(job) {
			return claimed
		}
	}
}

func process(ctx context.Context, processor Processor, job ports.ReportJob, worker int) {
	entry := log.WithFields(log.Fields{
		"worker":      worker,
		"report_id":   job.ReportID,
		"purchase_id": job.PurchaseID,
		"attempt":     job.Attempts,
	})
	if err := processor.ProcessJob(ctx, job); err != nil {
		entry.WithError(err).Error("report job failed")
		return
	}
	entry.Info("report job completed")
}

// SweepOnce runs a single sweep inline, processing each claimed report before
// claiming the next.
func SweepOnce(ctx context.Context, repo ports.JobRepository, processor Processor, policy ports.ClaimPolicy) int {
	return sweep(ctx, repo, policy, func(job ports.ReportJob) bool {
		process(ctx, processor, job, 0)
		return ctx.Err() == nil
	})
}
