package server

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const bodyKey = "validatedBody"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("square", func(fl validator.FieldLevel) bool {
		_, err := chess.ParseSquare(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// bind parses the JSON body into a new T, validates it and stores it for
// the next handler. An empty body validates the zero value.
func bind[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
					Error:   "invalid request body",
					Code:    CodeInvalidRequest,
					Details: err.Error(),
				})
			}
		}

		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "validation failed",
				Code:    CodeInvalidRequest,
				Details: describe(err),
			})
		}

		c.Locals(bodyKey, req)
		return c.Next()
	}
}

// body returns the request stored by bind.
func body[T any](c *fiber.Ctx) *T {
	req, ok := c.Locals(bodyKey).(*T)
	if !ok {
		return new(T)
	}
	return req
}

func describe(err error) string {
	var errs validator.ValidationErrors
	if !stderrors.As(err, &errs) {
		return err.Error()
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fe.Field())
		case "square":
			fmt.Fprintf(&details, "%s is not a square", fe.Field())
		case "max":
			if fe.Type().Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at most %s characters", fe.Field(), fe.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at most %s", fe.Field(), fe.Param())
			}
		default:
			fmt.Fprintf(&details, "%s failed %s validation", fe.Field(), fe.Tag())
		}
	}
	return details.String()
}

// contentTypeValidator requires JSON bodies on POST requests.
func contentTypeValidator(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Next()
	}
	contentType := c.Get(fiber.HeaderContentType)
	if contentType != "" && !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(ErrorResponse{
			Error:   "unsupported media type",
			Code:    CodeInvalidContent,
			Details: "Content-Type must be application/json",
		})
	}
	return c.Next()
}

// validID rejects game ids that are not UUIDs.
func validID(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid game ID format",
			Code:    CodeInvalidRequest,
			Details: "game ID must be a valid UUID",
		})
	}
	return c.Next()
}
