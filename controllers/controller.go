// Package controllers holds the gin handlers. Handlers decode requests, call
// the service layer under a bounded context and map errors onto HTTP statuses.
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"medstore/middleware"
	"medstore/models"
	"medstore/services"
	"medstore/store"
	"medstore/utils"
)

const defaultQueryTimeout = 10 * time.Second

// Uploader stores prescription images.
type Uploader interface {
	Upload(ctx context.Context, owner string, file *multipart.FileHeader) (*utils.UploadedImage, error)
}

type Handler struct {
	svc      *services.Service
	tokens   *utils.TokenIssuer
	denylist utils.TokenDenylist
	uploader Uploader
	timeout  time.Duration
}

type Deps struct {
	Service  *services.Service
	Tokens   *utils.TokenIssuer
	Denylist utils.TokenDenylist
	// Uploader may be nil; prescription uploads then answer 503.
	Uploader     Uploader
	QueryTimeout time.Duration
}

var registerTagNames sync.Once

func New(d Deps) *Handler {
	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
	timeout := d.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	denylist := d.Denylist
	if denylist == nil {
		denylist = utils.NewMemoryDenylist()
	}
	return &Handler{
		svc:      d.Service,
		tokens:   d.Tokens,
		denylist: denylist,
		uploader: d.Uploader,
		timeout:  timeout,
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ctx derives the per-request context: bounded by the query timeout and
// carrying the authenticated actor.
func (h *Handler) ctx(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if id := c.GetString(middleware.UserIDKey); id != "" {
		ctx = services.WithActor(ctx, services.Actor{
			ID:   models.UserID(id),
			Role: models.Role(c.GetString(middleware.RoleKey)),
		})
	}
	return context.WithTimeout(ctx, h.timeout)
}

func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "error": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found", "error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "already exists", "error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized", "error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "error": err.Error()})
	}
}

// bind decodes the JSON body into dst. Decoding and binding-tag failures are
// reported in the same field list as model validation.
func bind(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &verrs):
		v := &models.ValidationError{}
		for _, fe := range verrs {
			v.Add(fe.Field(), "%s", describeTag(fe))
		}
		return v
	case errors.As(err, &typeErr):
		return models.Invalid(typeErr.Field, "must be a %s", typeErr.Type)
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF):
		return models.Invalid("body", "must be a valid JSON document")
	}
	return models.Invalid("body", "%s", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	}
	return fmt.Sprintf("failed the %s check", fe.Tag())
}
