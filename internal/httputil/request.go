// Package httputil provides helpers for request handling.
package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrRequestBodyInvalid = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
)

// BindData binds the data from the request to the struct passed in the
// interface. Depending on the content type, the body is read as a form
// or as JSON.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBind(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrRequestBodyInvalid
	}

	return nil
}
