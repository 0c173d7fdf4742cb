package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/pyme-segmenter/internal/domain"
	"github.com/bnema/pyme-segmenter/internal/logging"
	"github.com/bnema/pyme-segmenter/internal/ports"
)

const (
	PymeComment        = "Operaciones PyME API"
	PymeCommentMarker  = "Operaciones PyME"
	PymeShiftLabel     = "09:00-16:00"
	ResidentialComment = "Retorno Residencial API"
	DayOffReason       = "DÍA_LIBRE"

	// RevertWindowDays is how far past today a PYME exit looks for overrides.
	RevertWindowDays = 5

	DefaultReconcileConcurrency = 4
)

var dailyOnce = domain.Recurrence{Type: domain.RecurrenceDaily, Every: 1}

// PymeOverrides turns every non-working day inside rng into a PYME shift.
func PymeOverrides(entries []domain.CalendarEntry, rng domain.DateRange) []domain.SchedulePatch {
	patches := make([]domain.SchedulePatch, 0)
	for _, entry := range entries {
		if entry.RecordType != domain.RecordTypeNonWorking || !rng.Contains(entry.Date) {
			continue
		}
		patches = append(patches, domain.SchedulePatch{
			StartDate:  entry.Date,
			EndDate:    entry.Date,
			Comments:   PymeComment,
			IsWorking:  true,
			RecordType: domain.RecordTypeExtraShift,
			ShiftLabel: PymeShiftLabel,
			Recurrence: dailyOnce,
		})
	}
	return patches
}

// ResidentialReverts turns PYME shifts created by PymeOverrides back into
// days off. Only entries in [from, to] are considered.
func ResidentialReverts(entries []domain.CalendarEntry, from, to domain.Date) []domain.SchedulePatch {
	patches := make([]domain.SchedulePatch, 0)
	for _, entry := range entries {
		if !entry.Date.Within(from, to) {
			continue
		}
		if !strings.Contains(entry.Comments, PymeCommentMarker) || entry.ShiftLabel != PymeShiftLabel {
			continue
		}
		patches = append(patches, domain.SchedulePatch{
			StartDate:        entry.Date,
			EndDate:          entry.Date,
			Comments:         ResidentialComment,
			IsWorking:        false,
			RecordType:       domain.RecordTypeNonWorking,
			ShiftType:        domain.ShiftTypeRegular,
			NonWorkingReason: DayOffReason,
			Recurrence:       dailyOnce,
		})
	}
	return patches
}

// RevertWindow is the [today, today+RevertWindowDays] span checked when a
// resource leaves PYME.
func RevertWindow(today domain.Date) domain.DateRange {
	return domain.DateRange{From: today, To: today.AddDays(RevertWindowDays), Valid: true}
}

type PatchFailure struct {
	ResourceID domain.ResourceID
	// Date is empty when the calendar could not be fetched.
	Date domain.Date
	Err  error
}

// ReconcileReport summarizes one best-effort reconciliation run.
type ReconcileReport struct {
	Resources int
	Patched   int
	Failures  []PatchFailure
}

func (r ReconcileReport) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, failure := range r.Failures {
		errs = append(errs, failure.Err)
	}
	return errors.Join(errs...)
}

type ScheduleReconciler struct {
	api         ports.WorkforceAPI
	log         *logrus.Entry
	concurrency int
}

func NewScheduleReconciler(api ports.WorkforceAPI, log *logrus.Entry, concurrency int) *ScheduleReconciler {
	if log == nil {
		log = logging.Discard()
	}
	if concurrency <= 0 {
		concurrency = DefaultReconcileConcurrency
	}
	return &ScheduleReconciler{api: api, log: log, concurrency: concurrency}
}

// Reconcile fetches each resource's calendar over window and applies the
// patches for direction. Resources run concurrently; a resource's patches
// run after its own calendar fetch. Failures are collected, never fatal.
func (r *ScheduleReconciler) Reconcile(ctx context.Context, direction domain.Direction, ids []domain.ResourceID, window domain.DateRange) ReconcileReport {
	report := ReconcileReport{Resources: len(ids)}
	log := logging.FromContext(ctx, r.log).WithField("direction", string(direction))

	var mu sync.Mutex
	record := func(patched int, failures ...PatchFailure) {
		mu.Lock()
		defer mu.Unlock()
		report.Patched += patched
		report.Failures = append(report.Failures, failures...)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)
	for _, id := range ids {
		group.Go(func() error {
			patched, failures := r.reconcileResource(groupCtx, log.WithField("resource_id", string(id)), direction, id, window)
			record(patched, failures...)
			return nil
		})
	}
	_ = group.Wait()

	return report
}

func (r *ScheduleReconciler) reconcileResource(ctx context.Context, log *logrus.Entry, direction domain.Direction, id domain.ResourceID, window domain.DateRange) (int, []PatchFailure) {
	calendar, err := r.api.GetCalendar(ctx, id, window.From, window.To)
	if err != nil {
		log.WithError(err).Warn("fetch calendar failed")
		return 0, []PatchFailure{{ResourceID: id, Err: fmt.Errorf("get calendar for %s: %w", id, err)}}
	}

	entries := calendar.Flatten()
	var patches []domain.SchedulePatch
	switch direction {
	case domain.DirectionToPyme:
		patches = PymeOverrides(entries, window)
	case domain.DirectionToResidential:
		patches = ResidentialReverts(entries, window.From, window.To)
	}

	patched := 0
	var failures []PatchFailure
	for _, patch := range patches {
		entryLog := log.WithField("date", patch.StartDate.String())
		if err := r.api.SetScheduleEntry(ctx, id, patch); err != nil {
			entryLog.WithError(err).Warn("schedule patch failed")
			failures = append(failures, PatchFailure{
				ResourceID: id,
				Date:       patch.StartDate,
				Err:        fmt.Errorf("set schedule for %s on %s: %w", id, patch.StartDate, err),
			})
			continue
		}
		entryLog.Debug("schedule patched")
		patched++
	}

	return patched, failures
}
