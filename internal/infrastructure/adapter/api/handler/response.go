package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainerr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/dto"
)

// LoginPath is where unauthenticated requests are sent
const LoginPath = "/login"

var offered = []string{binding.MIMEHTML, binding.MIMEJSON}

// HTTPStatus maps an error to the status of its apology
func HTTPStatus(err error) int {
	switch domainerr.KindOf(err) {
	case domainerr.KindValidation, domainerr.KindBusinessRule:
		return http.StatusBadRequest
	case domainerr.KindAuth:
		if domainerr.ErrorCode(err) == domainerr.CodeInvalidCredentials {
			return http.StatusForbidden
		}
		return http.StatusBadRequest
	case domainerr.KindUnauthenticated:
		return http.StatusUnauthorized
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindConflict:
		return http.StatusConflict
	case domainerr.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WantsJSON reports whether the client prefers JSON over HTML
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(offered...) == binding.MIMEJSON
}

// Apologize renders the apology page, or a JSON error, for err.
// Unauthenticated errors redirect to the login page instead.
func Apologize(c *gin.Context, logger coreport.Logger, err error) {
	if domainerr.KindOf(err) == domainerr.KindUnauthenticated {
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return
	}

	status := HTTPStatus(err)
	fields := domainerr.LogFields(err)
	fields["path"] = c.Request.URL.Path
	fields["status"] = status
	if requestID := coreport.RequestIDFromContext(c.Request.Context()); requestID != "" {
		fields["request_id"] = requestID
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	RenderApology(c, status, domainerr.ErrorCode(err), domainerr.PublicMessage(err))
}

// RenderApology writes an apology with an explicit status and message
func RenderApology(c *gin.Context, status, code int, message string) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  offered,
		HTMLName: "apology.html",
		HTMLData: page(c, "Apology", gin.H{"Code": status, "Message": message}),
		JSONData: dto.ErrorResponse{Code: code, Message: message},
	})
	c.Abort()
}

// render writes an HTML page or its JSON document
func render(c *gin.Context, status int, name, title string, data gin.H, jsonData any) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  offered,
		HTMLName: name,
		HTMLData: page(c, title, data),
		JSONData: jsonData,
	})
}

// done finishes a successful form post: JSON clients get the result, browsers a redirect home
func done(c *gin.Context, jsonData any) {
	if WantsJSON(c) {
		c.JSON(http.StatusOK, jsonData)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	_, data["LoggedIn"] = coreport.UserIDFromContext(c.Request.Context())
	return data
}

// currentUser returns the id stored by the auth middleware, or 0
func currentUser(c *gin.Context) uint64 {
	userID, _ := coreport.UserIDFromContext(c.Request.Context())
	return userID
}
