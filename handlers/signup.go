package handlers

import (
	"errors"
	"net/http"

	"streamify/models"
	"streamify/services/signup"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignupHandler exposes the wizard over HTTP. One endpoint per step; the
// service owns all ordering and validation decisions, the handler only
// translates its errors into status codes.
type SignupHandler struct {
	Service signup.Service
}

func NewSignupHandler(svc signup.Service) *SignupHandler {
	return &SignupHandler{Service: svc}
}

// draftView strips the password before a draft goes over the wire. The
// client only needs to know whether the step has been completed.
func draftView(d *models.SignupDraft) gin.H {
	view := gin.H{
		"draftId":     d.DraftID,
		"email":       d.Email,
		"hasPassword": d.Password != "",
	}
	if d.PlanID != "" {
		view["selectedPlanId"] = d.PlanID
	}
	if d.PaymentMethod != "" {
		view["paymentMethod"] = d.PaymentMethod
	}
	return view
}

// writeSignupError maps wizard errors onto HTTP responses. A guard failure
// is a redirect instruction, not a user-facing error; field validation keeps
// the client on the same form.
func writeSignupError(c *gin.Context, logger *zap.Logger, err error) {
	var incomplete *signup.StepIncompleteError
	if errors.As(err, &incomplete) {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "step prerequisites missing",
			"redirectTo": incomplete.RedirectTo,
		})
		return
	}

	var invalid *signup.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": invalid.Fields,
		})
		return
	}

	var dup *signup.DuplicateEmailError
	if errors.As(err, &dup) {
		c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
		return
	}

	if errors.Is(err, signup.ErrDraftNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	logger.Error("Signup operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed: " + err.Error()})
}

// StartSignupHandler handles POST /signup.
func (h *SignupHandler) StartSignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draft, err := h.Service.StartSignup(c.Request.Context(), req.Email)
	if err != nil {
		writeSignupError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, draftView(draft))
}

// GetSignupStepHandler handles GET /signup/:draftId/steps/:step. It runs the
// step guard on behalf of a page load so a deep link into an unfinished
// wizard redirects instead of rendering.
func (h *SignupHandler) GetSignupStepHandler(c *gin.Context) {
	logger := getLogger(c)

	draft, err := h.Service.GetStep(c.Request.Context(), c.Param("draftId"), signup.Step(c.Param("step")))
	if err != nil {
		writeSignupError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, draftView(draft))
}

// SetPasswordHandler handles PUT /signup/:draftId/password.
func (h *SignupHandler) SetPasswordHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid password request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draft, err := h.Service.SetPassword(c.Request.Context(), c.Param("draftId"), req.Password, req.ConfirmPassword)
	if err != nil {
		writeSignupError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, draftView(draft))
}

// SelectPlanHandler handles PUT /signup/:draftId/plan.
func (h *SignupHandler) SelectPlanHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		PlanID string `json:"planId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid plan request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draft, err := h.Service.SelectPlan(c.Request.Context(), c.Param("draftId"), req.PlanID)
	if err != nil {
		writeSignupError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, draftView(draft))
}

// SelectPaymentMethodHandler handles PUT /signup/:draftId/payment-method.
func (h *SignupHandler) SelectPaymentMethodHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid payment method request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	next, err := h.Service.SelectPaymentMethod(c.Request.Context(), c.Param("draftId"), req.Method)
	if err != nil {
		writeSignupError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextStep": next})
}

// SubmitCardHandler handles POST /signup/:draftId/payment/card. On success
// the account exists and the success countdown is already running.
func (h *SignupHandler) SubmitCardHandler(c *gin.Context) {
	logger := getLogger(c)

	var req signup.CardDetailsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid card request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.SubmitCardDetails(c.Request.Context(), c.Param("draftId"), req)
	if err != nil {
		writeSignupError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SubmitUpiHandler handles POST /signup/:draftId/payment/upi.
func (h *SignupHandler) SubmitUpiHandler(c *gin.Context) {
	logger := getLogger(c)

	var req signup.UpiDetailsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid UPI request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.SubmitUpiDetails(c.Request.Context(), c.Param("draftId"), req)
	if err != nil {
		writeSignupError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SignupSuccessHandler handles GET /signup/:draftId/success. The success
// page polls this to render the countdown.
func (h *SignupHandler) SignupSuccessHandler(c *gin.Context) {
	state, ok := h.Service.SuccessStatus(c.Param("draftId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no signup pending redirect"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// AcknowledgeSuccessHandler handles DELETE /signup/:draftId/success. The
// "sign in now" button cancels the countdown through this.
func (h *SignupHandler) AcknowledgeSuccessHandler(c *gin.Context) {
	h.Service.AcknowledgeSuccess(c.Param("draftId"))
	c.JSON(http.StatusOK, gin.H{"message": "countdown cancelled"})
}
