package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrfleet/internal/models/request_models"
	"qrfleet/internal/services"
	"qrfleet/pkg/middleware"
	"qrfleet/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login authenticates credentials and returns a signed session token,
// also set as a cookie for browser clients.
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	login, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, login.Token, 24*3600, "/", "", false, true)
	utils.RespondSuccess(c, login, "Login successful")
}

// Profile returns the caller's own account, resolved fresh per request.
func (a *AccountController) Profile(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	account, err := a.accountService.GetAccountById(c.Request.Context(), session, session.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profile fetched successfully")
}

func (a *AccountController) GetAllAccounts(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	accounts, err := a.accountService.GetAllAccounts(c.Request.Context(), session)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts fetched successfully")
}

func (a *AccountController) GetAccountById(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	account, err := a.accountService.GetAccountById(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

func (a *AccountController) CreateAccount(c *gin.Context) {
	var req request_models.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	account, err := a.accountService.CreateAccount(c.Request.Context(), session, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account created successfully")
}

func (a *AccountController) UpdateAccount(c *gin.Context) {
	var req request_models.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	account, token, err := a.accountService.UpdateAccount(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Self-edit: hand back a reissued token so the client's claims are
	// current immediately.
	if token != "" {
		c.SetCookie(middleware.SessionCookieName, token, 24*3600, "/", "", false, true)
		utils.RespondSuccess(c, gin.H{"account": account, "token": token}, "Account updated successfully")
		return
	}

	utils.RespondSuccess(c, account, "Account updated successfully")
}

func (a *AccountController) DeleteAccount(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := a.accountService.DeleteAccount(c.Request.Context(), session, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account deleted successfully")
}
