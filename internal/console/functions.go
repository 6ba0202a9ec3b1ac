package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"member-admin/config"
	"member-admin/internal/entities"
	"member-admin/internal/mapper"
	"member-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-multierror"
)

// FunctionsClient invokes the privileged functions of the mutation service
// on behalf of a session.
type FunctionsClient struct {
	baseURL string
	timeout time.Duration
}

// NewFunctionsClient constructs a client from configuration.
func NewFunctionsClient(cfg config.FunctionsConfig) *FunctionsClient {
	return &FunctionsClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
	}
}

// CreateUser calls create-user and returns the new account id.
func (f *FunctionsClient) CreateUser(ctx context.Context, session entities.Session, in entities.CreateAccountInput) (string, error) {
	var resp dto.CreateUserResponse
	if err := f.invoke(ctx, "create-user", session, mapper.ToCreateUserRequest(in), &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// DeleteUser calls delete-user.
func (f *FunctionsClient) DeleteUser(ctx context.Context, session entities.Session, in entities.DeleteAccountInput) error {
	var resp dto.SuccessResponse
	return f.invoke(ctx, "delete-user", session, mapper.ToDeleteUserRequest(in), &resp)
}

func (f *FunctionsClient) invoke(ctx context.Context, name string, session entities.Session, body, out any) error {
	if session.AccessToken == "" {
		return fmt.Errorf("%w: no active session", entities.ErrUnauthenticated)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.Post(f.baseURL+"/"+name).
		Set(fiber.HeaderAuthorization, "Bearer "+session.AccessToken).
		JSON(body).
		Timeout(f.callTimeout(ctx))
	if err := agent.Parse(); err != nil {
		return fmt.Errorf("%w: %s: %w", entities.ErrDownstream, name, err)
	}

	code, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		var merr *multierror.Error
		merr = multierror.Append(merr, errs...)
		return fmt.Errorf("%w: %s: %w", entities.ErrDownstream, name, merr.ErrorOrNil())
	}

	if code != http.StatusOK {
		var failed dto.ErrorResponse
		if err := json.Unmarshal(raw, &failed); err != nil || failed.Error == "" {
			failed.Error = fmt.Sprintf("%s failed with status %d", name, code)
		}
		return &FunctionError{Function: name, Status: code, Message: failed.Error}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %w", entities.ErrDownstream, name, err)
	}
	return nil
}

func (f *FunctionsClient) callTimeout(ctx context.Context) time.Duration {
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	return timeout
}

// FunctionError is a non-2xx reply of a function. It unwraps to the sentinel
// matching its status so callers can branch with errors.Is.
type FunctionError struct {
	Function string
	Status   int
	Message  string
}

func (e *FunctionError) Error() string {
	return e.Message
}

func (e *FunctionError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return entities.ErrInvalidArgument
	case http.StatusUnauthorized:
		return entities.ErrUnauthenticated
	case http.StatusForbidden:
		return entities.ErrForbidden
	default:
		return entities.ErrDownstream
	}
}
