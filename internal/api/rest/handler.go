package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lideeyah/Haid/internal/api/middleware"
	"github.com/Lideeyah/Haid/internal/api/rest/dto"
	"github.com/Lideeyah/Haid/internal/audit"
	"github.com/Lideeyah/Haid/internal/claim"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/identity"
	"github.com/Lideeyah/Haid/internal/registry"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// IssueIdentity issues (or returns) the identity for a subject reference
	// POST /api/v1/identities
	IssueIdentity(c *gin.Context)

	// GetIdentity resolves an identity by DID
	// GET /api/v1/identities/:did
	GetIdentity(c *gin.Context)

	// CreateEvent registers a new distribution event
	// POST /api/v1/events
	CreateEvent(c *gin.Context)

	// GetEvent retrieves an event with its agent assignments
	// GET /api/v1/events/:id
	GetEvent(c *gin.Context)

	// ActivateEvent opens a scheduled event for claims
	// POST /api/v1/events/:id/activate
	ActivateEvent(c *gin.Context)

	// CloseEvent finishes an event
	// POST /api/v1/events/:id/close
	CloseEvent(c *gin.Context)

	// AssignAgent authorizes an agent to record claims for an event
	// POST /api/v1/events/:id/agents
	AssignAgent(c *gin.Context)

	// SubmitScan records one scan; duplicates are reported, not errored
	// POST /api/v1/scans
	SubmitScan(c *gin.Context)

	// GetClaim retrieves a claim record by scan id
	// GET /api/v1/claims/:id
	GetClaim(c *gin.Context)

	// ListClaims retrieves claims with optional filters
	// GET /api/v1/claims?event_id=<id>&subject_did=<did>&status=<s1>,<s2>&since=<rfc3339>&limit=<limit>
	ListClaims(c *gin.Context)

	// VerifyClaim checks one claim against the consensus log
	// GET /api/v1/claims/:id/verification
	VerifyClaim(c *gin.Context)

	// Reconcile cross-checks collected claims against the consensus log
	// GET /api/v1/audit/reconcile?event_id=<id>&since=<rfc3339>
	Reconcile(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	issuer    identity.Issuer
	registry  registry.Registry
	processor claim.Processor
	verifier  audit.Verifier
}

// NewHandler creates a new REST API handler
func NewHandler(issuer identity.Issuer, reg registry.Registry, processor claim.Processor, verifier audit.Verifier) Handler {
	return &handler{
		issuer:    issuer,
		registry:  reg,
		processor: processor,
		verifier:  verifier,
	}
}

// IssueIdentity issues (or returns) the identity for a subject reference
func (h *handler) IssueIdentity(c *gin.Context) {
	var req dto.IssueIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	issued, err := h.issuer.Issue(c.Request.Context(), req.SubjectRef)
	if err != nil {
		h.respondDomainError(c, err, "Failed to issue identity")
		return
	}

	status := http.StatusOK
	if issued.Created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.NewIdentityResponse(issued.Identity))
}

// GetIdentity resolves an identity by DID
func (h *handler) GetIdentity(c *gin.Context) {
	did := c.Param("did")
	if did == "" {
		respondBadRequest(c, "DID is required")
		return
	}

	ident, err := h.issuer.Resolve(c.Request.Context(), domain.DID(did))
	if err != nil {
		h.respondDomainError(c, err, "Failed to resolve identity")
		return
	}

	if ident == nil {
		respondNotFound(c, "Identity not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewIdentityResponse(ident))
}

// CreateEvent registers a new distribution event
func (h *handler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	event, err := h.registry.CreateEvent(c.Request.Context(), registry.CreateEventInput{
		Name:        req.Name,
		AidType:     req.AidType,
		DedupPolicy: req.DedupPolicy,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		h.respondDomainError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.NewEventResponse(event))
}

// GetEvent retrieves an event with its agent assignments
func (h *handler) GetEvent(c *gin.Context) {
	event, err := h.registry.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondDomainError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponse(event))
}

// ActivateEvent opens a scheduled event for claims
func (h *handler) ActivateEvent(c *gin.Context) {
	if err := h.registry.ActivateEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondDomainError(c, err, "Failed to activate event")
		return
	}

	event, err := h.registry.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondDomainError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponse(event))
}

// CloseEvent finishes an event
func (h *handler) CloseEvent(c *gin.Context) {
	if err := h.registry.CloseEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondDomainError(c, err, "Failed to close event")
		return
	}

	event, err := h.registry.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondDomainError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponse(event))
}

// AssignAgent authorizes an agent to record claims for an event
func (h *handler) AssignAgent(c *gin.Context) {
	var req dto.AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.registry.AssignAgent(c.Request.Context(), c.Param("id"), req.AgentID); err != nil {
		h.respondDomainError(c, err, "Failed to assign agent")
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitScan records one scan
func (h *handler) SubmitScan(c *gin.Context) {
	var req dto.SubmitScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// The authenticated JWT subject is the agent unless the body names one
	agentID := req.AgentID
	if agentID == "" {
		agentID = middleware.AuthSubject(c)
	}
	if agentID == "" {
		respondValidationError(c, "agent_id is required when not authenticated as an agent")
		return
	}

	result, err := h.processor.Process(c.Request.Context(), claim.ScanInput{
		EventID:    req.EventID,
		SubjectDID: domain.DID(req.SubjectDID),
		AgentID:    agentID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAnchorFailure) && result != nil && result.Claim != nil {
			// The claim was durably recorded as failed; the client may retry
			response := dto.ScanResponse{
				Status: string(result.Status),
				Claim:  dto.NewClaimResponse(result.Claim),
			}
			c.JSON(http.StatusBadGateway, response)
			return
		}
		h.respondDomainError(c, err, "Failed to process scan")
		return
	}

	response := dto.ScanResponse{
		Status: string(result.Status),
		Claim:  dto.NewClaimResponse(result.Claim),
	}
	if result.Duplicate != nil {
		response.Duplicate = dto.NewClaimResponse(result.Duplicate)
	}

	// Windowed duplicates carry no blocking record, so the status drives
	// the response code.
	status := http.StatusCreated
	if result.Status == schema.ClaimStatusDuplicateBlocked {
		status = http.StatusOK
	}
	c.JSON(status, response)
}

// GetClaim retrieves a claim record by scan id
func (h *handler) GetClaim(c *gin.Context) {
	record, err := h.processor.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondDomainError(c, err, "Failed to get claim")
		return
	}

	c.JSON(http.StatusOK, dto.NewClaimResponse(record))
}

// ListClaims retrieves claims with optional filters
func (h *handler) ListClaims(c *gin.Context) {
	filter, err := ParseListClaimsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	records, err := h.processor.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list claims")
		return
	}

	response := dto.ListClaimsResponse{Claims: make([]dto.ClaimResponse, 0, len(records))}
	for i := range records {
		response.Claims = append(response.Claims, *dto.NewClaimResponse(&records[i]))
	}

	c.JSON(http.StatusOK, response)
}

// VerifyClaim checks one claim against the consensus log
func (h *handler) VerifyClaim(c *gin.Context) {
	verification, err := h.verifier.VerifyClaim(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondDomainError(c, err, "Failed to verify claim")
		return
	}

	c.JSON(http.StatusOK, verification)
}

// Reconcile cross-checks collected claims against the consensus log
func (h *handler) Reconcile(c *gin.Context) {
	eventID, since, err := ParseReconcileQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	report, err := h.verifier.Reconcile(c.Request.Context(), audit.Filter{
		EventID: eventID,
		Since:   since,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to reconcile")
		return
	}

	c.JSON(http.StatusOK, report)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "haid-api",
	})
}

// respondDomainError maps domain sentinels to HTTP responses
func (h *handler) respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrSubjectNotFound),
		errors.Is(err, domain.ErrClaimNotFound):
		respondNotFound(c, err.Error())
	case errors.Is(err, domain.ErrUnauthorizedClaim):
		respondForbidden(c, err.Error())
	case errors.Is(err, domain.ErrEventClosed),
		errors.Is(err, domain.ErrAgentAlreadyAssigned):
		respondConflict(c, err.Error())
	default:
		respondInternalError(c, err, message)
	}
}
