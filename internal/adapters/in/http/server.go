// Package http is the inbound REST adapter. Handlers translate requests
// into commands and queries and map domain errors onto HTTP statuses; no
// business logic lives here.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler       commands.CreateJobCommandHandler
	updateJobHandler       commands.UpdateJobCommandHandler
	acceptJobHandler       commands.AcceptJobCommandHandler
	startJobHandler        commands.StartJobCommandHandler
	cancelJobHandler       commands.CancelJobCommandHandler
	endJobHandler          commands.EndJobCommandHandler
	customerNotCallHandler commands.CustomerNotCallCommandHandler
	reopenJobHandler       commands.ReopenJobCommandHandler
	correctDistanceHandler commands.CorrectDistanceCommandHandler
	notifyHandler          commands.NotifyTranslatorsCommandHandler

	// Query handlers
	getJobHandler           queries.GetJobQueryHandler
	getUsersJobsHandler     queries.GetUsersJobsQueryHandler
	getUsersJobsHistory     queries.GetUsersJobsHistoryQueryHandler
	getAllJobsHandler       queries.GetAllJobsQueryHandler
	getPotentialJobsHandler queries.GetPotentialJobsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	updateJobHandler commands.UpdateJobCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	startJobHandler commands.StartJobCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	endJobHandler commands.EndJobCommandHandler,
	customerNotCallHandler commands.CustomerNotCallCommandHandler,
	reopenJobHandler commands.ReopenJobCommandHandler,
	correctDistanceHandler commands.CorrectDistanceCommandHandler,
	notifyHandler commands.NotifyTranslatorsCommandHandler,
	getJobHandler queries.GetJobQueryHandler,
	getUsersJobsHandler queries.GetUsersJobsQueryHandler,
	getUsersJobsHistory queries.GetUsersJobsHistoryQueryHandler,
	getAllJobsHandler queries.GetAllJobsQueryHandler,
	getPotentialJobsHandler queries.GetPotentialJobsQueryHandler,
) *Server {
	return &Server{
		createJobHandler:        createJobHandler,
		updateJobHandler:        updateJobHandler,
		acceptJobHandler:        acceptJobHandler,
		startJobHandler:         startJobHandler,
		cancelJobHandler:        cancelJobHandler,
		endJobHandler:           endJobHandler,
		customerNotCallHandler:  customerNotCallHandler,
		reopenJobHandler:        reopenJobHandler,
		correctDistanceHandler:  correctDistanceHandler,
		notifyHandler:           notifyHandler,
		getJobHandler:           getJobHandler,
		getUsersJobsHandler:     getUsersJobsHandler,
		getUsersJobsHistory:     getUsersJobsHistory,
		getAllJobsHandler:       getAllJobsHandler,
		getPotentialJobsHandler: getPotentialJobsHandler,
	}
}

// RegisterRoutes attaches all job lifecycle routes to the echo group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/jobs", s.CreateJob)
	g.GET("/jobs/potential", s.GetPotentialJobs)
	g.GET("/jobs/:id", s.GetJob)
	g.PUT("/jobs/:id", s.UpdateJob)
	g.POST("/jobs/accept", s.AcceptJob)
	g.POST("/jobs/:id/accept", s.AcceptJobWithID)
	g.POST("/jobs/:id/start", s.StartJob)
	g.POST("/jobs/:id/cancel", s.CancelJob)
	g.POST("/jobs/:id/end", s.EndJob)
	g.POST("/jobs/:id/customer-not-call", s.CustomerNotCall)
	g.POST("/jobs/:id/reopen", s.ReopenJob)
	g.POST("/jobs/:id/notifications/push", s.ResendPush)
	g.POST("/jobs/:id/notifications/sms", s.ResendSMS)
	g.POST("/distance-feed", s.DistanceFeed)
	g.GET("/users/:id/jobs", s.GetUsersJobs)
	g.GET("/users/:id/jobs/history", s.GetUsersJobsHistory)
	g.GET("/admin/jobs", s.GetAllJobs)
}

type errorResponse struct {
	Error string `json:"error"`
}

type dataResponse struct {
	Data any `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// jobJSON is the wire shape of a job in every listing and detail response.
type jobJSON struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	TranslatorID *string    `json:"translator_id,omitempty"`
	Language     string     `json:"language"`
	StartAt      time.Time  `json:"start_at"`
	DurationMin  int        `json:"duration_min"`
	ContactEmail string     `json:"contact_email,omitempty"`
	Reference    string     `json:"reference,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

func toJobJSON(response queries.JobResponse) jobJSON {
	out := jobJSON{
		ID:           response.ID.String(),
		CustomerID:   response.CustomerID.String(),
		Language:     response.Language,
		StartAt:      response.StartAt,
		DurationMin:  response.DurationMin,
		ContactEmail: response.ContactEmail,
		Reference:    response.Reference,
		Status:       response.Status,
		CreatedAt:    response.CreatedAt,
		AcceptedAt:   response.AcceptedAt,
		EndedAt:      response.EndedAt,
	}
	if response.TranslatorID != nil {
		translatorID := response.TranslatorID.String()
		out.TranslatorID = &translatorID
	}
	return out
}

func toJobJSONList(responses []queries.JobResponse) []jobJSON {
	out := make([]jobJSON, len(responses))
	for i, response := range responses {
		out[i] = toJobJSON(response)
	}
	return out
}

type deliveryResultJSON struct {
	UserID  string `json:"user_id"`
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
	Reason  string `json:"reason,omitempty"`
}

func toDeliveryResultJSON(results []ports.DeliveryResult) []deliveryResultJSON {
	out := make([]deliveryResultJSON, len(results))
	for i, result := range results {
		out[i] = deliveryResultJSON{
			UserID:  result.UserID.String(),
			Channel: string(result.Channel),
			Sent:    result.Sent,
			Reason:  result.Reason,
		}
	}
	return out
}

// writeError maps domain errors onto HTTP statuses with an {error} envelope.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, job.ErrInvalidTransition),
		errors.Is(err, job.ErrAlreadyTerminal),
		errors.Is(err, distance.ErrNothingToCorrect),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
}

func jobIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

type createJobRequest struct {
	Language     string    `json:"language"`
	StartAt      time.Time `json:"start_at"`
	DurationMin  int       `json:"duration_min"`
	ContactEmail string    `json:"contact_email"`
	Reference    string    `json:"reference"`
}

// CreateJob handles POST /jobs - books a new interpretation session for the
// authenticated customer.
func (s *Server) CreateJob(ctx echo.Context) error {
	actorID, _, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var request createJobRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	language, err := kernel.NewLanguage(request.Language)
	if err != nil {
		return writeError(ctx, err)
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(
		jobID,
		actorID,
		language,
		request.StartAt,
		request.DurationMin,
		request.ContactEmail,
		request.Reference,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dataResponse{Data: map[string]string{"id": jobID.String()}})
}

type updateJobRequest struct {
	StartAt      time.Time `json:"start_at"`
	DurationMin  int       `json:"duration_min"`
	ContactEmail string    `json:"contact_email"`
	Reference    string    `json:"reference"`
}

// UpdateJob handles PUT /jobs/:id - reschedules or amends a booking.
// Zero-valued fields are left unchanged.
func (s *Server) UpdateJob(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request updateJobRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewUpdateJobCommand(
		jobID,
		request.StartAt,
		request.DurationMin,
		request.ContactEmail,
		request.Reference,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Record updated!"})
}

// GetJob handles GET /jobs/:id - retrieves one job with its translator
// contact details.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getJobHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	payload := map[string]any{"job": toJobJSON(response.Job)}
	if response.TranslatorName != "" {
		payload["translator"] = map[string]string{
			"name":  response.TranslatorName,
			"phone": response.TranslatorPhone,
		}
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: payload})
}

type acceptJobRequest struct {
	JobID string `json:"job_id"`
}

// AcceptJob handles POST /jobs/accept - the authenticated translator claims
// the job named in the request body.
func (s *Server) AcceptJob(ctx echo.Context) error {
	var request acceptJobRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	jobID, err := kernel.UUIDFromString(request.JobID)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.acceptJob(ctx, jobID)
}

// AcceptJobWithID handles POST /jobs/:id/accept - the path-parameter variant
// of accept.
func (s *Server) AcceptJobWithID(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.acceptJob(ctx, jobID)
}

func (s *Server) acceptJob(ctx echo.Context, jobID kernel.UUID) error {
	actorID, _, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Job accepted"})
}

// StartJob handles POST /jobs/:id/start - the assigned translator begins
// the session.
func (s *Server) StartJob(ctx echo.Context) error {
	actorID, _, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartJobCommand(jobID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Session started"})
}

// CancelJob handles POST /jobs/:id/cancel.
func (s *Server) CancelJob(ctx echo.Context) error {
	actorID, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelJobCommand(jobID, actorID, actorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Job cancelled"})
}

// EndJob handles POST /jobs/:id/end - completes a session in progress.
func (s *Server) EndJob(ctx echo.Context) error {
	actorID, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEndJobCommand(jobID, actorID, actorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.endJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Session ended"})
}

// CustomerNotCall handles POST /jobs/:id/customer-not-call - records a
// customer no-show.
func (s *Server) CustomerNotCall(ctx echo.Context) error {
	actorID, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCustomerNotCallCommand(jobID, actorID, actorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.customerNotCallHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Job marked as not called"})
}

// ReopenJob handles POST /jobs/:id/reopen - admin returns a finished job to
// the pending pool.
func (s *Server) ReopenJob(ctx echo.Context) error {
	_, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !actorRole.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: "only admins can reopen jobs"})
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReopenJobCommand(jobID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reopenJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Job reopened"})
}

type distanceFeedRequest struct {
	JobID           string  `json:"job_id"`
	Distance        *string `json:"distance"`
	Time            *string `json:"time"`
	SessionTime     *string `json:"session_time"`
	AdminComments   *string `json:"admin_comments"`
	Flagged         *bool   `json:"flagged"`
	ManuallyHandled *bool   `json:"manually_handled"`
	ByAdmin         *bool   `json:"by_admin"`
}

// DistanceFeed handles POST /distance-feed - admin corrections to a job's
// distance record. A correction with nothing to change is rejected without
// a write.
func (s *Server) DistanceFeed(ctx echo.Context) error {
	_, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !actorRole.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: "only admins can correct distance records"})
	}

	var request distanceFeedRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	jobID, err := kernel.UUIDFromString(request.JobID)
	if err != nil {
		return writeError(ctx, err)
	}

	correction, err := distance.NewCorrection(
		request.Distance,
		request.Time,
		request.SessionTime,
		request.AdminComments,
		request.Flagged,
		request.ManuallyHandled,
		request.ByAdmin,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCorrectDistanceCommand(jobID, correction)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.correctDistanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Record updated!"})
}

// ResendPush handles POST /jobs/:id/notifications/push - re-announces a job
// to eligible translators over push.
func (s *Server) ResendPush(ctx echo.Context) error {
	return s.resendNotifications(ctx, ports.ChannelPush, "Push sent")
}

// ResendSMS handles POST /jobs/:id/notifications/sms - re-announces a job to
// eligible translators over SMS.
func (s *Server) ResendSMS(ctx echo.Context) error {
	return s.resendNotifications(ctx, ports.ChannelSMS, "SMS sent")
}

func (s *Server) resendNotifications(ctx echo.Context, channel ports.Channel, successMessage string) error {
	_, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !actorRole.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: "only admins can resend notifications"})
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewNotifyTranslatorsCommand(jobID, channel)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.notifyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	// The SMS surface reports an aggregate failure when every attempt in
	// the fan-out failed.
	if channel == ports.ChannelSMS && allFailed(results) {
		return ctx.JSON(http.StatusOK, map[string]any{
			"fail": results[0].Reason,
			"data": toDeliveryResultJSON(results),
		})
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": successMessage,
		"data":    toDeliveryResultJSON(results),
	})
}

func allFailed(results []ports.DeliveryResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, result := range results {
		if result.Sent {
			return false
		}
	}
	return true
}

// GetUsersJobs handles GET /users/:id/jobs - the user's active bookings.
func (s *Server) GetUsersJobs(ctx echo.Context) error {
	actorID, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if !actorID.IsEqual(userID) && !actorRole.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: "cannot list another user's jobs"})
	}

	query, err := queries.NewGetUsersJobsQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	jobs, err := s.getUsersJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: toJobJSONList(jobs)})
}

// GetUsersJobsHistory handles GET /users/:id/jobs/history - finished jobs,
// paginated and optionally narrowed to a date range.
func (s *Server) GetUsersJobsHistory(ctx echo.Context) error {
	actorID, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if !actorID.IsEqual(userID) && !actorRole.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: "cannot list another user's jobs"})
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return writeError(ctx, err)
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUsersJobsHistoryQuery(
		userID,
		from,
		to,
		parseIntParam(ctx.QueryParam("page")),
		parseIntParam(ctx.QueryParam("limit")),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getUsersJobsHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: map[string]any{
		"jobs":        toJobJSONList(response.Jobs),
		"page":        response.Page,
		"limit":       response.Limit,
		"total_count": response.TotalCount,
	}})
}

// GetAllJobs handles GET /admin/jobs - the admin console listing with
// optional filters.
func (s *Server) GetAllJobs(ctx echo.Context) error {
	_, actorRole, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !actorRole.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: "admin access required"})
	}

	var filter queries.GetAllJobsFilter

	if statusName := ctx.QueryParam("status"); statusName != "" {
		status, found := job.StatusFromString(statusName)
		if !found {
			return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "unknown status: " + statusName})
		}
		filter.Status = status
	}

	filter.Language = ctx.QueryParam("language")

	if customerParam := ctx.QueryParam("customer_id"); customerParam != "" {
		customerID, err := kernel.UUIDFromString(customerParam)
		if err != nil {
			return writeError(ctx, err)
		}
		filter.CustomerID = &customerID
	}

	var err error
	if filter.From, err = parseTimeParam(ctx.QueryParam("from")); err != nil {
		return writeError(ctx, err)
	}
	if filter.To, err = parseTimeParam(ctx.QueryParam("to")); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllJobsQuery(
		filter,
		parseIntParam(ctx.QueryParam("page")),
		parseIntParam(ctx.QueryParam("limit")),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getAllJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: map[string]any{
		"jobs":        toJobJSONList(response.Jobs),
		"page":        response.Page,
		"limit":       response.Limit,
		"total_count": response.TotalCount,
	}})
}

// GetPotentialJobs handles GET /jobs/potential - pending jobs the
// authenticated translator could accept.
func (s *Server) GetPotentialJobs(ctx echo.Context) error {
	actorID, _, ok := actorFromContext(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetPotentialJobsQuery(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	jobs, err := s.getPotentialJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: toJobJSONList(jobs)})
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("time parameter", err)
	}
	return parsed, nil
}

func parseIntParam(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
