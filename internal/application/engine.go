package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/pyme-segmenter/internal/domain"
	"github.com/bnema/pyme-segmenter/internal/logging"
	"github.com/bnema/pyme-segmenter/internal/ports"
)

type EngineOptions struct {
	// Location decides which calendar day "today" is. Defaults to time.Local.
	Location    *time.Location
	Concurrency int
	Log         *logrus.Entry
}

// TransitionResult describes a finished or declined transition.
type TransitionResult struct {
	Direction domain.Direction
	Confirmed bool
	Moved     int
	Report    ReconcileReport
}

// Engine owns the session state and runs every remote side effect. The
// mutex guards state only and is never held across a remote call.
type Engine struct {
	api        ports.WorkforceAPI
	notifier   ports.Notifier
	clock      ports.Clock
	reconciler *ScheduleReconciler
	validate   *validator.Validate
	log        *logrus.Entry
	location   *time.Location
	limit      int

	mu         sync.Mutex
	state      SessionState
	configured bool
	halted     bool
	applying   bool
	listeners  []*listener
}

type listener struct {
	fn func(ViewModel)
}

func NewEngine(api ports.WorkforceAPI, notifier ports.Notifier, clock ports.Clock, opts EngineOptions) *Engine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultReconcileConcurrency
	}

	return &Engine{
		api:        api,
		notifier:   notifier,
		clock:      clock,
		reconciler: NewScheduleReconciler(api, opts.Log, opts.Concurrency),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		log:        opts.Log,
		location:   opts.Location,
		limit:      opts.Concurrency,
		state:      NewSessionState(),
	}
}

func (e *Engine) Today() domain.Date {
	return domain.DateOf(e.clock.Now().In(e.location))
}

// Initialize checks the host session, configures the API client and runs
// the first Load. An unauthorized login halts the engine for good.
func (e *Engine) Initialize(ctx context.Context, session domain.HostSession) error {
	if err := e.validate.Struct(session.Credentials); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, describeValidation(err))
	}

	if !session.LoginAllowed() {
		e.mu.Lock()
		e.halted = true
		e.mu.Unlock()
		e.update(func(s SessionState) SessionState { return s.WithPhase(PhaseHalted).WithLoading(false) })
		e.notifier.NotifyUnauthorized(UnauthorizedMessage)
		logging.FromContext(ctx, e.log).WithField("login", session.Login).Warn("login not allowed")
		return domain.ErrUnauthorized
	}

	if err := e.api.Configure(session.Credentials); err != nil {
		return fmt.Errorf("configure workforce api: %w: %w", domain.ErrConfiguration, err)
	}

	e.mu.Lock()
	e.configured = true
	e.mu.Unlock()

	return e.Load(ctx)
}

// Start reads the host session from sessions and initializes the engine
// with it.
func (e *Engine) Start(ctx context.Context, sessions ports.HostSessionProvider) error {
	session, err := sessions.Session(ctx)
	if err != nil {
		return fmt.Errorf("read host session: %w", err)
	}
	return e.Initialize(ctx, session)
}

// Load re-derives the pools and the Residential tree from the remote
// resource list. Safe to call repeatedly.
func (e *Engine) Load(ctx context.Context) error {
	if err := e.ready(); err != nil {
		return err
	}

	e.update(func(s SessionState) SessionState {
		if s.Phase == PhaseIdle || s.Phase == PhaseReady {
			s = s.WithPhase(PhaseLoading)
		}
		return s.WithLoading(true)
	})
	defer func() {
		applying := e.isApplying()
		e.update(func(s SessionState) SessionState {
			if s.Phase == PhaseLoading {
				s = s.WithPhase(PhaseReady)
			}
			return s.WithLoading(applying)
		})
	}()

	return e.load(ctx)
}

func (e *Engine) load(ctx context.Context) error {
	resources, err := e.api.ListResources(ctx)
	if err != nil {
		return remoteError("list resources", err)
	}

	active := domain.FilterSegmentable(resources)
	pyme, residential := domain.Classify(active, e.Today())
	tree := domain.BuildTree(residential)

	logging.FromContext(ctx, e.log).WithFields(logrus.Fields{
		"active":      len(active),
		"pyme":        len(pyme),
		"residential": len(residential),
	}).Debug("resources loaded")

	e.update(func(s SessionState) SessionState {
		return s.WithLoaded(active, pyme, residential, tree)
	})
	return nil
}

// ToggleSelection only touches the selection buffer.
func (e *Engine) ToggleSelection(pool domain.Pool, resource domain.Resource, selected bool) error {
	if err := e.ready(); err != nil {
		return err
	}
	if !pool.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPool, pool)
	}
	e.update(func(s SessionState) SessionState { return s.ToggleSelection(pool, resource, selected) })
	return nil
}

// SetDateRange stores rng as-is. Span and horizon rules belong to
// domain.NewDateRange.
func (e *Engine) SetDateRange(rng domain.DateRange) error {
	if err := e.ready(); err != nil {
		return err
	}
	if rng.Valid && rng.To.Before(rng.From) {
		return fmt.Errorf("%w: %s is after %s", domain.ErrInvalidRange, rng.From, rng.To)
	}
	e.update(func(s SessionState) SessionState { return s.WithRange(rng) })
	return nil
}

func (e *Engine) SetTargetSkill(code string) error {
	if err := e.ready(); err != nil {
		return err
	}
	skill, err := domain.NormalizePoolMarker(code)
	if err != nil {
		return fmt.Errorf("set target skill %q: %w", code, err)
	}
	e.update(func(s SessionState) SessionState { return s.WithTargetSkill(skill) })
	return nil
}

// Resource looks id up in the pool loaded by the last Load.
func (e *Engine) Resource(pool domain.Pool, id domain.ResourceID) (domain.Resource, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	source := e.state.Residential
	if pool == domain.PoolPyme {
		source = e.state.Pyme
	}
	for _, resource := range source {
		if resource.ID == id {
			return resource, nil
		}
	}
	return domain.Resource{}, fmt.Errorf("%w: %s in %s", domain.ErrResourceNotFound, id, pool.Label())
}

// RequestTransition asks for confirmation and applies direction when the
// user agrees. A declined prompt returns a result with Confirmed false.
func (e *Engine) RequestTransition(ctx context.Context, direction domain.Direction) (TransitionResult, error) {
	result := TransitionResult{Direction: direction}
	if err := e.ready(); err != nil {
		return result, err
	}
	if !direction.Valid() {
		return result, fmt.Errorf("%w: direction %q", domain.ErrUnknownPool, direction)
	}

	state := e.snapshot()
	selection := state.Selection(direction.Source())
	if len(selection) == 0 {
		return result, domain.ErrEmptySelection
	}
	if direction == domain.DirectionToPyme && !state.Range.Valid {
		return result, fmt.Errorf("%w: no range selected", domain.ErrInvalidRange)
	}

	if err := e.begin(); err != nil {
		return result, err
	}
	defer e.finish()

	e.update(func(s SessionState) SessionState { return s.WithPhase(PhaseConfirming) })
	confirmed, err := e.notifier.Confirm(ctx, ConfirmMessage(direction, len(selection)))
	if err != nil {
		return result, fmt.Errorf("confirm transition: %w", err)
	}
	if !confirmed {
		return result, nil
	}

	if direction == domain.DirectionToPyme {
		return e.applyToPyme(ctx)
	}
	return e.applyToResidential(ctx)
}

// ApplyToPyme moves the Residential selection into the target pool for the
// active range without asking for confirmation.
func (e *Engine) ApplyToPyme(ctx context.Context) (TransitionResult, error) {
	if err := e.begin(); err != nil {
		return TransitionResult{Direction: domain.DirectionToPyme}, err
	}
	defer e.finish()
	return e.applyToPyme(ctx)
}

// ApplyToResidential moves the PYME selection back without asking for
// confirmation.
func (e *Engine) ApplyToResidential(ctx context.Context) (TransitionResult, error) {
	if err := e.begin(); err != nil {
		return TransitionResult{Direction: domain.DirectionToResidential}, err
	}
	defer e.finish()
	return e.applyToResidential(ctx)
}

func (e *Engine) applyToPyme(ctx context.Context) (TransitionResult, error) {
	direction := domain.DirectionToPyme
	result := TransitionResult{Direction: direction, Confirmed: true}

	state := e.snapshot()
	selection := state.SelectedResidential
	if len(selection) == 0 {
		return result, domain.ErrEmptySelection
	}
	if !state.Range.Valid {
		return result, fmt.Errorf("%w: no range selected", domain.ErrInvalidRange)
	}

	log := logging.FromContext(ctx, e.log).WithFields(logrus.Fields{
		"direction": string(direction),
		"range":     state.Range.String(),
		"skill":     state.TargetSkill,
	})
	e.update(func(s SessionState) SessionState { return s.WithPhase(PhaseApplying).WithLoading(true) })

	deltas := PlanToPyme(selection, state.Range, state.TargetSkill, e.Today())
	if err := e.submitSkills(ctx, log, deltas); err != nil {
		return result, e.abort(ctx, log, err)
	}

	result.Report = e.reconciler.Reconcile(logging.WithLogger(ctx, log), direction, resourceIDs(selection), state.Range)
	return e.complete(ctx, log, result, len(selection))
}

func (e *Engine) applyToResidential(ctx context.Context) (TransitionResult, error) {
	direction := domain.DirectionToResidential
	result := TransitionResult{Direction: direction, Confirmed: true}

	state := e.snapshot()
	selection := state.SelectedPyme
	if len(selection) == 0 {
		return result, domain.ErrEmptySelection
	}

	log := logging.FromContext(ctx, e.log).WithField("direction", string(direction))
	e.update(func(s SessionState) SessionState { return s.WithPhase(PhaseApplying).WithLoading(true) })

	today := e.Today()
	deltas, err := PlanToResidential(selection, today)
	if err != nil {
		log.WithError(err).Warn("transition rejected before any remote call")
		e.notifier.NotifyError(NoRestorableSkillsMessage)
		return result, e.clearAndReload(ctx, err)
	}

	if err := e.submitSkills(ctx, log, deltas); err != nil {
		return result, e.abort(ctx, log, err)
	}

	result.Report = e.reconciler.Reconcile(logging.WithLogger(ctx, log), direction, resourceIDs(selection), RevertWindow(today))
	return e.complete(ctx, log, result, len(selection))
}

// submitSkills sends every delta and waits for all of them. The returned
// error joins each failure.
func (e *Engine) submitSkills(ctx context.Context, log *logrus.Entry, deltas []SkillDelta) error {
	var (
		mu   sync.Mutex
		errs []error
	)

	var group errgroup.Group
	group.SetLimit(e.limit)
	for _, delta := range deltas {
		group.Go(func() error {
			if err := e.api.SetSkillAssignments(ctx, delta.ResourceID, delta.Skills); err != nil {
				log.WithField("resource_id", string(delta.ResourceID)).WithError(err).Error("skill update failed")
				mu.Lock()
				errs = append(errs, remoteError(fmt.Sprintf("set skills for %s", delta.ResourceID), err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = group.Wait()

	if len(errs) == 0 {
		return nil
	}
	return &SkillUpdateError{Failed: len(errs), Total: len(deltas), Err: errors.Join(errs...)}
}

type SkillUpdateError struct {
	Failed int
	Total  int
	Err    error
}

func (e *SkillUpdateError) Error() string {
	return fmt.Sprintf("skill update failed for %d of %d resources: %v", e.Failed, e.Total, e.Err)
}

func (e *SkillUpdateError) Unwrap() error {
	return e.Err
}

func (e *Engine) abort(ctx context.Context, log *logrus.Entry, err error) error {
	log.WithError(err).Error("transition aborted after skill update")
	failed := 1
	var skillErr *SkillUpdateError
	if errors.As(err, &skillErr) {
		failed = skillErr.Failed
	}
	e.notifier.NotifyError(skillUpdateFailedMessage(failed))
	return e.clearAndReload(ctx, err)
}

func (e *Engine) complete(ctx context.Context, log *logrus.Entry, result TransitionResult, moved int) (TransitionResult, error) {
	result.Moved = moved
	log.WithFields(logrus.Fields{
		"moved":          moved,
		"patched":        result.Report.Patched,
		"patch_failures": len(result.Report.Failures),
		"resource_count": result.Report.Resources,
	}).Info("transition applied")

	e.notifier.NotifySuccess(SuccessMessage(result.Direction, moved))
	if err := e.clearAndReload(ctx, nil); err != nil {
		return result, fmt.Errorf("reload after transition: %w", err)
	}
	return result, nil
}

// clearAndReload empties the buffers and range, then reloads. cause is
// returned joined with any reload failure.
func (e *Engine) clearAndReload(ctx context.Context, cause error) error {
	e.update(func(s SessionState) SessionState { return s.Cleared() })
	if err := e.load(ctx); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (e *Engine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.halted {
		return domain.ErrUnauthorized
	}
	if !e.configured {
		return fmt.Errorf("%w: engine not initialized", domain.ErrConfiguration)
	}
	if e.applying {
		return domain.ErrTransitionInFlight
	}
	e.applying = true
	return nil
}

func (e *Engine) finish() {
	e.mu.Lock()
	e.applying = false
	e.mu.Unlock()

	e.update(func(s SessionState) SessionState {
		return s.WithPhase(PhaseReady).WithLoading(false)
	})
}

func (e *Engine) ready() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.halted {
		return domain.ErrUnauthorized
	}
	if !e.configured {
		return fmt.Errorf("%w: engine not initialized", domain.ErrConfiguration)
	}
	return nil
}

func (e *Engine) isApplying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applying
}

func (e *Engine) snapshot() SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) ViewModel() ViewModel {
	e.mu.Lock()
	state := e.state
	e.mu.Unlock()
	return projectViewModel(state, e.Today())
}

// Subscribe registers fn to receive a fresh ViewModel after every state
// change. The returned func removes it.
func (e *Engine) Subscribe(fn func(ViewModel)) func() {
	l := &listener{fn: fn}

	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, existing := range e.listeners {
			if existing == l {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) update(reduce func(SessionState) SessionState) {
	e.mu.Lock()
	e.state = reduce(e.state)
	state := e.state
	listeners := append([]*listener(nil), e.listeners...)
	e.mu.Unlock()

	if len(listeners) == 0 {
		return
	}
	view := projectViewModel(state, e.Today())
	for _, l := range listeners {
		l.fn(view)
	}
}

func remoteError(op string, err error) error {
	if errors.Is(err, domain.ErrRemoteCall) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrRemoteCall, err)
}

func describeValidation(err error) string {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err.Error()
	}
	fields := make([]string, 0, len(invalid))
	for _, fieldErr := range invalid {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}
	return "invalid credentials: " + strings.Join(fields, ", ")
}
