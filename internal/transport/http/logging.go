package http

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

// Contact details are masked before request and response bodies reach the log.
var maskedBodyFields = []string{"email", "phone"}

type requestLogEntry struct {
	Time      string `json:"time"`
	RequestID string `json:"request_id,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
	Request   struct {
		Method string `json:"method"`
		URI    string `json:"uri"`
		Body   any    `json:"body,omitempty"`
	} `json:"request"`
	Response struct {
		Status int    `json:"status"`
		Body   any    `json:"body,omitempty"`
		Error  string `json:"error,omitempty"`
	} `json:"response"`
}

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			var entry requestLogEntry
			entry.Time = v.StartTime.Format(time.RFC3339)
			entry.RequestID = v.RequestID
			entry.LatencyMS = v.Latency.Milliseconds()
			entry.Request.Method = v.Method
			entry.Request.URI = v.URI
			entry.Request.Body = c.Get(requestBodyLogKey)
			entry.Response.Status = v.Status
			entry.Response.Body = c.Get(responseBodyLogKey)
			if v.Error != nil {
				entry.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(entry)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := summarizeBody(reqBody); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := summarizeBody(resBody); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

func summarizeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var data any
	if json.Valid(body) && json.Unmarshal(body, &data) == nil {
		return limitJSONSize(maskJSON(data, ""))
	}

	if containsBinaryBytes(body) {
		return "binary"
	}
	return clampString(string(body))
}

func maskJSON(value any, key string) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = maskJSON(item, strings.ToLower(k))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = maskJSON(item, key)
		}
		return out
	case string:
		if isMaskedField(key) {
			return maskValue(v)
		}
		return clampString(v)
	default:
		return v
	}
}

func isMaskedField(key string) bool {
	for _, field := range maskedBodyFields {
		if key == field {
			return true
		}
	}
	return false
}

// maskValue keeps the first character, e.g. "a***".
func maskValue(v string) string {
	r, size := utf8.DecodeRuneInString(v)
	if size == 0 || r == utf8.RuneError {
		return "***"
	}
	return string(r) + "***"
}

func limitJSONSize(value any) any {
	buf, err := json.Marshal(value)
	if err != nil || len(buf) <= maxLoggedBody {
		return value
	}
	return map[string]any{
		"_truncated": true,
		"_preview":   previewJSON(value, 0),
	}
}

func previewJSON(value any, depth int) any {
	const (
		maxDepth        = 3
		maxMapEntries   = 6
		maxArraySamples = 3
		maxString       = 256
	)

	if depth >= maxDepth {
		return "...(omitted)..."
	}

	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make(map[string]any, maxMapEntries+1)
		for i, k := range keys {
			if i == maxMapEntries {
				out["_omitted_fields"] = len(keys) - i
				break
			}
			out[k] = previewJSON(v[k], depth+1)
		}
		return out
	case []any:
		samples := make([]any, 0, maxArraySamples)
		for i := 0; i < len(v) && i < maxArraySamples; i++ {
			samples = append(samples, previewJSON(v[i], depth+1))
		}
		return map[string]any{
			"_total_items": len(v),
			"_sample":      samples,
		}
	case string:
		if len(v) <= maxString {
			return v
		}
		return truncateUTF8(v, maxString) + "...(truncated)"
	default:
		return v
	}
}

func containsBinaryBytes(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	return truncateUTF8(value, maxLoggedBody) + "...(truncated)"
}

func truncateUTF8(value string, limit int) string {
	out := value[:limit]
	for !utf8.ValidString(out) && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}
