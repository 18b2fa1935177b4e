// Package v1 implements Redfish API v1 error handling and utilities.
package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// redfishError creates a standard Redfish error response structure
func redfishError(messageID, message, severity, resolution string, messageArgs []string) map[string]any {
	extendedInfo := map[string]any{
		"@odata.type": "#Message.v1_1_1.Message",
		"MessageId":   messageID,
		"Message":     message,
		"Severity":    severity,
		"Resolution":  resolution,
	}

	// Only add MessageArgs if provided and not empty
	if len(messageArgs) > 0 {
		extendedInfo["MessageArgs"] = messageArgs
	}

	return map[string]any{
		"error": map[string]any{
			"@Message.ExtendedInfo": []map[string]any{extendedInfo},
			"code":                  messageID,
			"message":               message,
		},
	}
}

// SetRedfishHeaders sets standard Redfish-compliant HTTP headers
func SetRedfishHeaders(c *gin.Context) {
	c.Header(ContentTypeHeaderName, ContentTypeJSON)
	c.Header(ODataVersionHeader, ODataVersionValue)
	c.Header(CacheControlHeader, CacheControlValue)
	c.Header(XFrameOptionsHeader, XFrameOptionsValue)
	c.Header(CSPHeader, CSPValue)
}

// redfishErrorResponse sends a Redfish error response with proper headers
func redfishErrorResponse(c *gin.Context, statusCode int, messageID, message, severity, resolution string, messageArgs []string) {
	SetRedfishHeaders(c)
	c.AbortWithStatusJSON(statusCode, redfishError(messageID, message, severity, resolution, messageArgs))
}

// MalformedJSONError returns a Redfish-compliant error for malformed JSON requests
func MalformedJSONError(c *gin.Context) {
	redfishErrorResponse(c, http.StatusBadRequest,
		BaseMalformedJSONID,
		"The request body submitted was malformed JSON and could not be parsed by the receiving service.",
		"Critical",
		"Ensure that the request body is valid JSON and resubmit the request.",
		nil)
}

// PropertyMissingError returns a Redfish-compliant error for missing required properties
func PropertyMissingError(c *gin.Context, propertyName string) {
	redfishErrorResponse(c, http.StatusBadRequest,
		BasePropertyMissingID,
		fmt.Sprintf("The property %s is a required property and must be included in the request.", propertyName),
		"Warning",
		"Ensure that the property is in the request body and has a valid value and resubmit the request.",
		[]string{propertyName})
}

// PropertyValueNotInListError returns a Redfish-compliant error for invalid enum values
func PropertyValueNotInListError(c *gin.Context, value, propertyName string) {
	redfishErrorResponse(c, http.StatusBadRequest,
		BasePropertyValueNotInListID,
		fmt.Sprintf("The value '%s' for the property %s is not in the list of acceptable values.", value, propertyName),
		"Warning",
		"Choose a value from the enumeration list that the implementation can support and resubmit the request if the operation failed.",
		[]string{value, propertyName})
}

// ResourceNotFoundError returns a Redfish-compliant error for missing resources
func ResourceNotFoundError(c *gin.Context, resourceType, resourceID string) {
	redfishErrorResponse(c, http.StatusNotFound,
		BaseResourceNotFoundID,
		fmt.Sprintf("The requested resource of type %s named '%s' was not found.", resourceType, resourceID),
		"Critical",
		"Provide a valid resource identifier and resubmit the request.",
		[]string{resourceType, resourceID})
}

// ActionNotSupportedError is returned when the backend lacks the capability
// a mutation needs.
func ActionNotSupportedError(c *gin.Context, action string) {
	redfishErrorResponse(c, http.StatusBadRequest,
		BaseActionNotSupportedID,
		fmt.Sprintf("The action %s is not supported by the resource.", action),
		"Critical",
		"The action supplied cannot be resubmitted to the implementation. Perhaps the action was invalid, the wrong resource was the target or the implementation documentation may be of assistance.",
		[]string{action})
}

// NotAcceptableError returns 406 for Accept headers that exclude JSON.
func NotAcceptableError(c *gin.Context, accept string) {
	redfishErrorResponse(c, http.StatusNotAcceptable,
		BaseNotAcceptableID,
		fmt.Sprintf("The requested media type %s is not supported. Only application/json is available.", accept),
		"Critical",
		"Resubmit the request with an Accept header that allows application/json.",
		[]string{accept})
}

// UnsupportedMediaTypeError returns 415 for request bodies that are not JSON.
func UnsupportedMediaTypeError(c *gin.Context, contentType string) {
	redfishErrorResponse(c, http.StatusUnsupportedMediaType,
		BaseUnsupportedMediaTypeID,
		fmt.Sprintf("The content type %s is not supported.", contentType),
		"Critical",
		"Resubmit the request with a Content-Type of application/json.",
		[]string{contentType})
}

// NoValidSessionError returns 401 and asks the client for Basic credentials.
func NoValidSessionError(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="Redfish"`)
	redfishErrorResponse(c, http.StatusUnauthorized,
		BaseNoValidSessionID,
		"There is no valid session established with the implementation.",
		"Critical",
		"Establish a session before attempting any operations.",
		nil)
}

// HTTPMethodNotAllowedError returns 405 with the methods the resource allows.
func HTTPMethodNotAllowedError(c *gin.Context, method, resourceType, allowed string) {
	c.Header("Allow", allowed)
	redfishErrorResponse(c, http.StatusMethodNotAllowed,
		BaseOperationNotAllowedID,
		fmt.Sprintf("The HTTP method %s is not allowed on the %s resource.", method, resourceType),
		"Critical",
		fmt.Sprintf("Use one of the allowed methods: %s.", allowed),
		[]string{method, resourceType})
}

// GeneralError returns a Redfish-compliant error for general internal errors
func GeneralError(c *gin.Context) {
	redfishErrorResponse(c, http.StatusInternalServerError,
		BaseErrorMessageID,
		"A general error has occurred. See ExtendedInfo for more information.",
		"Critical",
		"None.",
		nil)
}

// respondError is the single place where core errors become HTTP responses.
// Only unexpected failures are logged at error level; their detail never
// reaches the client.
func respondError(c *gin.Context, l logger.Interface, err error, op, resourceType, resourceID string) {
	var (
		alias     *entity.AliasAccessError
		malformed *entity.MalformedRequestError
	)

	switch {
	case errors.As(err, &alias):
		redirectToCanonical(c, alias.UUID)
	case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrAccessDenied):
		l.Debug("http - redfish v1 - %s: %v", op, err)
		ResourceNotFoundError(c, resourceType, resourceID)
	case errors.As(err, &malformed):
		if malformed.Value == "" {
			PropertyMissingError(c, malformed.Property)
		} else {
			PropertyValueNotInListError(c, malformed.Value, malformed.Property)
		}
	case errors.Is(err, entity.ErrMalformedRequest):
		MalformedJSONError(c)
	case errors.Is(err, entity.ErrNotSupported):
		l.Debug("http - redfish v1 - %s: %v", op, err)
		ActionNotSupportedError(c, op)
	default:
		l.Error(err, "http - redfish v1 - "+op)
		GeneralError(c)
	}
}

// redirectToCanonical repeats the request against uuid: the :identity
// segment of the matched route is replaced and the query kept. 307
// preserves the method and the body.
func redirectToCanonical(c *gin.Context, uuid string) {
	route := strings.Split(c.FullPath(), "/")
	path := strings.Split(c.Request.URL.EscapedPath(), "/")

	if len(route) == len(path) {
		for i, seg := range route {
			if seg == ":"+identityParam {
				path[i] = url.PathEscape(uuid)
			}
		}
	}

	location := strings.Join(path, "/")
	if c.Request.URL.RawQuery != "" {
		location += "?" + c.Request.URL.RawQuery
	}

	SetRedfishHeaders(c)
	c.Header("Location", location)
	c.AbortWithStatus(http.StatusTemporaryRedirect)
}
