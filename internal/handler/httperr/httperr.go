package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the body of every non-2xx reply: {"error":{"message":...,"fields":[...]}}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string       `json:"message"`
		Fields  []FieldError `json:"fields,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldError names one rejected request field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// AbortWithError writes the error body and records err on the context so the
// logging middleware can report the underlying cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	abort(c, err, resp)
}

// AbortWithBindError is the 400 for a request that failed gin binding. Validator
// failures are listed per field under the json tag name.
func AbortWithBindError(c *gin.Context, err error, msg string) {
	resp := Response{Status: http.StatusBadRequest}
	resp.Error.Message = msg
	resp.Error.Fields = fieldErrors(err)
	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: jsonFieldName(fe),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// jsonFieldName falls back to the lower-cased struct field when the validator was
// not configured with a json tag name function.
func jsonFieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != fe.StructField() {
		return name
	}
	return strings.ToLower(fe.StructField())
}
