package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// flexInt accepts a JSON number or a string holding a base-10 integer.
// Values must fit the 32-bit INTEGER columns they are stored in.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var s string
	switch v := raw.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return fmt.Errorf("expected an integer, got %s", data)
	}

	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*n = flexInt(i)
	return nil
}

func toInts(values []flexInt) []int {
	ints := make([]int, len(values))
	for i, v := range values {
		ints[i] = int(v)
	}
	return ints
}

// pageParam reads the page query parameter, defaulting to 1
func pageParam(c echo.Context) (int, error) {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, service.ErrInvalidPage
	}
	return page, nil
}

// idParam reads the id path parameter. A numeric id outside the 32-bit
// column range fails with an error wrapping strconv.ErrRange.
func idParam(c echo.Context) (int, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
