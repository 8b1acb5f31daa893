package handlers

import (
	stderrors "errors"
	"io"

	"github.com/labstack/echo/v4"
)

// bindRequest decodes a JSON body into req whatever the Content-Type.
// An empty body leaves req at its zero value.
func bindRequest(c echo.Context, req interface{}) error {
	r := c.Request()
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	err := c.Echo().JSONSerializer.Deserialize(c, req)
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return err
}
