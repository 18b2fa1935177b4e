package v1

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResourceReference represents a reference to another resource
type ResourceReference struct {
	ODataID string `json:"@odata.id"`
}

// ResourceCollection is the body of every Redfish collection document.
type ResourceCollection struct {
	ODataContext string              `json:"@odata.context,omitempty"`
	ODataID      string              `json:"@odata.id"`
	ODataType    string              `json:"@odata.type"`
	Name         string              `json:"Name"`
	Description  string              `json:"Description,omitempty"`
	MembersCount int                 `json:"Members@odata.count"`
	Members      []ResourceReference `json:"Members"`
}

// Status represents the health status of a resource
type Status struct {
	State  string `json:"State"`
	Health string `json:"Health,omitempty"`
}

var statusOK = Status{State: StateEnabled, Health: HealthOK}

func ref(path string) ResourceReference {
	return ResourceReference{ODataID: path}
}

func refs(paths []string) []ResourceReference {
	out := make([]ResourceReference, 0, len(paths))
	for _, p := range paths {
		out = append(out, ref(p))
	}

	return out
}

// newCollection builds a collection whose members are base/<id>.
func newCollection(odataType, odataID, name string, ids []string) ResourceCollection {
	members := make([]ResourceReference, 0, len(ids))
	for _, id := range ids {
		members = append(members, ref(odataID+"/"+id))
	}

	return ResourceCollection{
		ODataContext: PathMetadata + odataType,
		ODataID:      odataID,
		ODataType:    odataType,
		Name:         name,
		MembersCount: len(members),
		Members:      members,
	}
}

// generateETag creates an ETag for caching based on content
func generateETag(content []byte) string {
	hash := sha256.Sum256(content)

	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// writeResource renders a GET document with an ETag and honours
// If-None-Match.
func writeResource(c *gin.Context, payload any) {
	SetRedfishHeaders(c)

	body, err := json.Marshal(payload)
	if err != nil {
		GeneralError(c)

		return
	}

	etag := generateETag(body)
	c.Header("ETag", etag)

	if match := c.GetHeader("If-None-Match"); match != "" && (match == "*" || match == etag) {
		c.Status(http.StatusNotModified)

		return
	}

	c.Data(http.StatusOK, ContentTypeJSON, body)
}

// bindJSON decodes the request body into v, answering 400 MalformedJSON on
// failure.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		MalformedJSONError(c)

		return false
	}

	return true
}

// methodNotAllowed registers 405 handlers on path for every method in
// methods.
func methodNotAllowed(r gin.IRoutes, path, resourceType, allowed string, methods ...string) {
	for _, m := range methods {
		method := m
		r.Handle(method, path, func(c *gin.Context) {
			HTTPMethodNotAllowedError(c, method, resourceType, allowed)
		})
	}
}
