package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"mtfuji-paragliding/fujipsystem/internal/constants"
)

var validate = validator.New()

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// DecodeJSON reads the request body into dst and runs struct validation. Both failures
// come back as validation errors. An empty body decodes to the zero value.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return NewValidationError("%s", constants.MsgInvalidRequestBody)
		}
	}
	return ValidateStruct(dst)
}

// ValidateStruct reports the first failing field as a validation error.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return NewValidationError("%s is %s", fe.Field(), fe.Tag())
		}
		return NewValidationError("%s", constants.MsgInvalidRequestBody)
	}
	return nil
}
