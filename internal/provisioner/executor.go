// internal/provisioner/executor.go

// Package provisioner walks an ordered recommendation batch and provisions
// each resource through the backend capability, tolerating individual
// failures. Independent resources run concurrently through a bounded worker
// pool; the dependency graph, not its linearization, decides what may
// overlap.
package provisioner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"cloud-advisor/internal/backend"
	commonerrors "cloud-advisor/internal/common/errors"
	"cloud-advisor/internal/common/logger"
	"cloud-advisor/internal/common/metrics"
	"cloud-advisor/internal/models"
	"cloud-advisor/internal/orderer"
	"cloud-advisor/internal/statusstore"
)

// AuditRecorder persists per-resource outcomes out of band. Implementations
// must be safe for concurrent use; a nil recorder disables auditing.
type AuditRecorder interface {
	RecordOutcome(ctx context.Context, requestID string, outcome models.ResourceOutcome) error
}

// Options tunes one executor.
type Options struct {
	// Concurrency bounds the worker pool. Minimum 1.
	Concurrency int
	// BatchTimeout is the deadline after which a batch is marked failed.
	// Zero disables the deadline.
	BatchTimeout time.Duration
	// EstimatedDuration feeds the estimated_completion field on new requests.
	EstimatedDuration time.Duration
}

type Executor struct {
	backend backend.Client
	store   statusstore.Store
	audit   AuditRecorder
	logger  logger.Logger
	opts    Options
}

func NewExecutor(client backend.Client, store statusstore.Store, audit AuditRecorder, log logger.Logger, opts Options) *Executor {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.EstimatedDuration <= 0 {
		opts.EstimatedDuration = 15 * time.Minute
	}
	return &Executor{
		backend: client,
		store:   store,
		audit:   audit,
		logger: log.With(map[string]interface{}{
			"component": "provisioner",
		}),
		opts: opts,
	}
}

// Execute provisions the confirmed batch for requestID and returns the
// outcomes in dependency order. The call fails before any side effect when
// resource names collide or the dependency graph has a cycle. Individual
// backend failures are recorded and the batch continues; the request ends
// completed with progress 100 unless the deadline or cancellation stopped
// dispatching first, in which case it ends failed.
func (e *Executor) Execute(ctx context.Context, requestID string, recommendations []models.Recommendation) ([]models.ResourceOutcome, error) {
	log := e.logger.With(map[string]interface{}{"requestId": requestID})
	log.Info("starting resource provisioning", map[string]interface{}{
		"resourceCount": len(recommendations),
	})

	seen := make(map[string]struct{}, len(recommendations))
	for _, rec := range recommendations {
		if _, dup := seen[rec.Name]; dup {
			return nil, commonerrors.NewDuplicateResourceError(rec.Name)
		}
		seen[rec.Name] = struct{}{}
	}

	// Ordering happens before the store is touched so a cycle leaves no
	// trace of the request.
	ordered, err := orderer.Order(recommendations)
	if err != nil {
		var cycle *commonerrors.CycleError
		if errors.As(err, &cycle) {
			return nil, commonerrors.NewDependencyCycleError(cycle.Resource)
		}
		return nil, err
	}

	if err := e.store.Begin(ctx, requestID, e.opts.EstimatedDuration); err != nil {
		return nil, commonerrors.NewStatusStoreError(err)
	}

	metrics.BatchesActive.Inc()
	defer metrics.BatchesActive.Dec()

	if e.opts.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.BatchTimeout)
		defer cancel()
	}

	total := len(ordered)
	outcomes := make([]models.ResourceOutcome, total)
	finished := make(map[string]chan struct{}, total)
	for _, rec := range ordered {
		finished[rec.Name] = make(chan struct{})
	}

	// Backend calls run on a detached context: cancellation stops new
	// dispatches but in-flight resources finish.
	callCtx := context.WithoutCancel(ctx)

	sem := semaphore.NewWeighted(int64(e.opts.Concurrency))
	var wg sync.WaitGroup
	var completed int64

	for i, rec := range ordered {
		wg.Add(1)
		go func(idx int, rec models.Recommendation) {
			defer wg.Done()
			defer close(finished[rec.Name])

			// A resource waits for every in-batch dependency to finish;
			// a failed dependency does not block its dependents.
			for _, dep := range rec.Dependencies {
				ch, ok := finished[dep]
				if !ok {
					continue
				}
				<-ch
			}

			// Acquiring on the batch context gates dispatch: once the batch
			// is cancelled or past its deadline, resources that have not
			// started stay unprovisioned. The slot is held only while
			// provisioning, never while waiting on dependencies.
			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			outcome := e.provisionOne(callCtx, requestID, rec)
			sem.Release(1)

			outcomes[idx] = outcome
			done := atomic.AddInt64(&completed, 1)
			progress := float64(done) / float64(total) * 100

			if err := e.store.AppendOutcome(callCtx, requestID, outcome, progress); err != nil {
				log.Error("failed to record outcome", map[string]interface{}{
					"resource": rec.Name,
					"error":    err.Error(),
				})
			}
		}(i, rec)
	}

	wg.Wait()

	collected := make([]models.ResourceOutcome, 0, total)
	for i := range outcomes {
		if outcomes[i].Name != "" {
			collected = append(collected, outcomes[i])
		}
	}

	if ctx.Err() != nil && int(atomic.LoadInt64(&completed)) < total {
		message := "provisioning cancelled before all resources were dispatched"
		batchErr := commonerrors.NewBatchCancelledError(requestID)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			message = "provisioning batch exceeded its deadline"
			batchErr = commonerrors.NewBatchTimeoutError(requestID)
		}
		if err := e.store.Fail(callCtx, requestID, message); err != nil {
			log.Error("failed to mark request failed", map[string]interface{}{"error": err.Error()})
		}
		log.Warn("provisioning aborted", map[string]interface{}{
			"completed": atomic.LoadInt64(&completed),
			"total":     total,
		})
		return collected, batchErr
	}

	if err := e.store.Complete(callCtx, requestID, collected); err != nil {
		return collected, commonerrors.NewStatusStoreError(err)
	}

	log.Info("completed resource provisioning", map[string]interface{}{
		"resourceCount": len(collected),
	})
	return collected, nil
}

// provisionOne invokes the backend for a single resource and converts the
// result or error into an outcome record. Failures never propagate.
func (e *Executor) provisionOne(ctx context.Context, requestID string, rec models.Recommendation) models.ResourceOutcome {
	log := e.logger.With(map[string]interface{}{
		"requestId":    requestID,
		"resource":     rec.Name,
		"resourceType": string(rec.Kind),
	})
	log.Info("provisioning resource", nil)

	start := time.Now()
	result, err := provisionResource(ctx, e.backend, rec)
	metrics.ProvisioningDuration.WithLabelValues(string(rec.Kind)).Observe(time.Since(start).Seconds())

	var outcome models.ResourceOutcome
	if err != nil {
		outcome = outcomeFromError(rec, err)
		metrics.ResourcesFailed.WithLabelValues(string(rec.Kind), errorCode(err)).Inc()
		log.Error("resource provisioning failed", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		outcome = outcomeFromResult(rec, result)
		metrics.ResourcesProvisioned.WithLabelValues(string(rec.Kind)).Inc()
		log.Info("resource provisioned", map[string]interface{}{
			"resourceId": result.ID,
		})
	}

	if e.audit != nil {
		if err := e.audit.RecordOutcome(ctx, requestID, outcome); err != nil {
			log.Warn("audit record failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return outcome
}

func errorCode(err error) string {
	var stdErr *commonerrors.StandardError
	if errors.As(err, &stdErr) {
		return string(stdErr.Code)
	}
	return string(commonerrors.ErrCodeBackendFailure)
}
