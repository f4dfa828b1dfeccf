//go:build unit

package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/operator"
	"tour-booking-console/internal/domain/wizard"
	"tour-booking-console/internal/handler"
	"tour-booking-console/internal/handler/api"
	resdto "tour-booking-console/internal/handler/dto/response"
	"tour-booking-console/internal/handler/middleware"
	"tour-booking-console/internal/pkg/authctx"
	"tour-booking-console/internal/pkg/config"
	"tour-booking-console/internal/pkg/errs"
	"tour-booking-console/internal/pkg/jwt"
	"tour-booking-console/internal/testutil/builder"
	"tour-booking-console/internal/testutil/httptest"
	usecasemock "tour-booking-console/internal/testutil/mock/usecase"
	"tour-booking-console/internal/usecase"
	"tour-booking-console/internal/usecase/commands"
	"tour-booking-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

type RouterSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	cmds    *usecasemock.MockWizardCommands
	queries *usecasemock.MockBookingQueries
	router  *gin.Engine
	jwt     *jwt.Service
	spans   *tracetest.SpanRecorder

	approverToken string
	viewerToken   string
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.ctrl = gomock.NewController(s.T())
	s.cmds = usecasemock.NewMockWizardCommands(s.ctrl)
	s.queries = usecasemock.NewMockBookingQueries(s.ctrl)
	s.jwt = jwt.NewService(cfg.JWT.Secret, time.Hour)
	s.spans = tracetest.NewSpanRecorder()

	s.router = gin.New()
	handler.NewRouter(
		s.router,
		cfg,
		middleware.NewLogger(cfg.Log),
		sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans)),
		api.NewWizardHandler(s.cmds),
		api.NewBookingHandler(s.queries),
		middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt)),
	)

	s.approverToken = s.token(operator.RoleApprover)
	s.viewerToken = s.token(operator.RoleViewer)
}

func (s *RouterSuite) token(role operator.Role) string {
	tok, err := s.jwt.GenerateToken(uuid.New(), uuid.New(), role)
	s.Require().NoError(err)
	return tok
}

func (s *RouterSuite) wizardView(b *booking.Booking) *commands.WizardView {
	return &commands.WizardView{
		Booking:   b,
		Guests:    builder.Guests(1),
		Mode:      wizard.ModeActive,
		Step:      wizard.StepGuests,
		Completed: []wizard.Step{wizard.StepReview},
		Clickable: []wizard.Step{wizard.StepReview, wizard.StepGuests},
	}
}

func path(id uuid.UUID, suffix string) string {
	return "/api/company/bookings/" + id.String() + suffix
}

func (s *RouterSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestRequestsAreTraced() {
	b := builder.NewBookingBuilder().MustBuild()
	s.cmds.EXPECT().Enter(gomock.Any(), b.ID()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) (*commands.WizardView, error) {
			s.True(trace.SpanContextFromContext(ctx).IsValid(), "use case runs inside the request span")
			return s.wizardView(b), nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path(b.ID(), "/wizard"), nil, s.approverToken)

	s.Equal(http.StatusOK, w.Code)
	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Equal(trace.SpanKindServer, ended[0].SpanKind())
}

func (s *RouterSuite) TestAuth() {
	id := uuid.New()

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path(id, "/wizard"), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path(id, "/wizard"), nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("viewer cannot approve", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/approve"), nil, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func (s *RouterSuite) TestEnter() {
	b := builder.NewBookingBuilder().MustBuild()

	s.cmds.EXPECT().Enter(gomock.Any(), b.ID()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) (*commands.WizardView, error) {
			tok, ok := authctx.Token(ctx)
			s.True(ok)
			s.Equal(s.viewerToken, tok, "operator token reaches the use case")
			return s.wizardView(b), nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path(b.ID(), "/wizard"), nil, s.viewerToken)

	var res resdto.WizardResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Equal(2, res.Step)
	s.Equal("active", res.Mode)
	s.Equal([]int{1}, res.CompletedSteps)
	s.Equal([]int{1, 2}, res.ClickableSteps)
	s.Equal(b.ID().String(), res.Booking.ID)
	s.Equal("1000000", res.Booking.Total)
	s.Len(res.Guests, 1)
}

func (s *RouterSuite) TestInvalidID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/company/bookings/nope/wizard", nil, s.viewerToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
}

func (s *RouterSuite) TestErrorMapping() {
	id := uuid.New()

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "no session", err: commands.ErrSessionNotFound, wantStatus: http.StatusNotFound, wantCode: "WIZARD_NOT_OPEN"},
		{name: "in flight", err: commands.ErrActionInFlight, wantStatus: http.StatusConflict, wantCode: "ACTION_IN_FLIGHT"},
		{name: "superseded", err: commands.ErrSessionSuperseded, wantStatus: http.StatusConflict, wantCode: "SESSION_SUPERSEDED"},
		{name: "wrong step", err: wizard.ErrWrongStep, wantStatus: http.StatusConflict, wantCode: "TRANSITION_NOT_ALLOWED"},
		{name: "expired", err: errs.Mark(errs.New("401"), errs.ErrSessionExpired), wantStatus: http.StatusUnauthorized, wantCode: "SESSION_EXPIRED"},
		{name: "guest gone", err: errs.Mark(errs.New("404"), errs.ErrGuestNotFound), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "backend down", err: errs.Mark(errs.New("503"), errs.ErrBackendUnavailable), wantStatus: http.StatusBadGateway, wantCode: "BACKEND_UNAVAILABLE"},
		{name: "unexpected", err: errs.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.cmds.EXPECT().ApproveStep1(gomock.Any(), id).Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/approve"), nil, s.approverToken)

			httptest.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.wantCode)
		})
	}
}

func (s *RouterSuite) TestFinish() {
	id := uuid.New()

	s.Run("success carries the display delay", func() {
		s.cmds.EXPECT().Finish(gomock.Any(), id).Return(&commands.Outcome{
			BookingID: id,
			Status:    booking.StatusBalanceSuccess,
			Navigate:  "/company/bookings",
			Delay:     1500 * time.Millisecond,
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/finish"), nil, s.approverToken)

		var res resdto.OutcomeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("BOOKING_BALANCE_SUCCESS", res.Status)
		s.Equal(int64(1500), res.DelayMs)
		s.Equal("/company/bookings", res.Navigate)
	})

	s.Run("partial insurance flush", func() {
		s.cmds.EXPECT().Finish(gomock.Any(), id).Return(nil, &commands.BatchFlushError{
			Total: 3, Attempted: 2, Succeeded: 1, Err: errs.New("503"),
		})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/finish"), nil, s.approverToken)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "INSURANCE_FLUSH_FAILED")
		s.Equal(float64(3), body.Detail["total"])
		s.Equal(float64(1), body.Detail["succeeded"])
	})

	s.Run("insufficient payment", func() {
		s.cmds.EXPECT().Finish(gomock.Any(), id).Return(nil, &booking.InsufficientPaymentError{
			Paid:            decimal.NewFromInt(100),
			RequiredDeposit: decimal.NewFromInt(300),
			RequiredTotal:   decimal.NewFromInt(1000),
		})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/finish"), nil, s.approverToken)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "INSUFFICIENT_PAYMENT")
		s.Equal("300", body.Detail["required_deposit"])
	})
}

func (s *RouterSuite) TestDecisions() {
	id := uuid.New()

	s.Run("reject requires a reason", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/reject"), map[string]any{}, s.approverToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("reject", func() {
		s.cmds.EXPECT().Reject(gomock.Any(), id, "duplicate booking").
			Return(&commands.Outcome{BookingID: id, Status: booking.StatusRejected, Navigate: "/company/bookings"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/reject"),
			map[string]any{"reason": "duplicate booking"}, s.approverToken)

		var res resdto.OutcomeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("BOOKING_REJECTED", res.Status)
	})

	s.Run("blank message fails validation", func() {
		s.cmds.EXPECT().RequestUpdate(gomock.Any(), id, "  ").
			Return(nil, errs.Mark(wizard.ErrEmptyMessage, errs.ErrValidation))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/request-update"),
			map[string]any{"message": "  "}, s.approverToken)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "VALIDATION")
		s.Equal("Message is required", body.Error.Message)
	})
}

func (s *RouterSuite) TestStepRequests() {
	b := builder.NewBookingBuilder().MustBuild()
	guestID := uuid.New()

	s.Run("goto out of range", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(b.ID(), "/wizard/goto"), map[string]any{"step": 4}, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("goto", func() {
		s.cmds.EXPECT().GoTo(gomock.Any(), b.ID(), wizard.StepReview).Return(s.wizardView(b), nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(b.ID(), "/wizard/goto"), map[string]any{"step": 1}, s.viewerToken)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("stage insurance", func() {
		s.cmds.EXPECT().StageInsurance(gomock.Any(), b.ID(), guestID, "SUCCESS").Return(s.wizardView(b), nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path(b.ID(), "/wizard/insurance"),
			map[string]any{"guest_id": guestID.String(), "status": "SUCCESS"}, s.approverToken)
		s.Equal(http.StatusOK, w.Code)
	})
}

func (s *RouterSuite) TestLeave() {
	id := uuid.New()

	s.Run("link needs a path", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/leave"), map[string]any{"kind": "link"}, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("back asks for confirmation", func() {
		s.cmds.EXPECT().RequestLeave(gomock.Any(), id, commands.LeaveIntent{Kind: commands.LeaveBack}).
			Return(&commands.LeaveDecision{Action: commands.LeaveConfirm, RepushHistory: true}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path(id, "/wizard/leave"), map[string]any{"kind": "back"}, s.viewerToken)

		var res resdto.LeaveResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("confirm", res.Action)
		s.True(res.RepushHistory)
	})

	s.Run("guard", func() {
		s.cmds.EXPECT().UnsavedChanges(id).Return(true, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path(id, "/wizard/guard"), nil, s.viewerToken)

		var res resdto.GuardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.UnsavedChanges)
	})

	s.Run("close", func() {
		s.cmds.EXPECT().Close(id).Return(nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path(id, "/wizard"), nil, s.viewerToken)
		s.Equal(http.StatusNoContent, w.Code)
	})
}

func (s *RouterSuite) TestSummary() {
	b := builder.NewBookingBuilder().WithPaid(300_000).MustBuild()
	next := booking.StatusPendingBalancePayment

	s.queries.EXPECT().GetSummary(gomock.Any(), b.ID()).Return(&queries.BookingSummaryView{
		Booking: b,
		Guests:  builder.Guests(2),
		Payment: queries.PaymentPreview{
			EffectiveTotal:   decimal.NewFromInt(1_000_000),
			EffectiveDeposit: decimal.NewFromInt(300_000),
			Paid:             decimal.NewFromInt(300_000),
			NextStatus:       &next,
		},
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path(b.ID(), "/summary"), nil, s.viewerToken)

	var res resdto.BookingSummaryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	assert.Equal(s.T(), "PENDING_BALANCE_PAYMENT", res.Payment.NextStatus)
	assert.Nil(s.T(), res.Payment.Shortfall)
	assert.Len(s.T(), res.Guests, 2)
}
