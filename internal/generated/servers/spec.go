package servers

import (
	"context"
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error

	registerOnce sync.Once
	registerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The document is
// loaded once; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = err
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = err
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}

// swaggerJSON serves the document to echo-swagger through the swag registry.
type swaggerJSON struct {
	doc string
}

func (s swaggerJSON) ReadDoc() string {
	return s.doc
}

// RegisterSwaggerDoc publishes the document under swag's default instance name
// so that the swagger UI handler can serve it. swag panics on a second
// registration, so only the first call registers.
func RegisterSwaggerDoc() error {
	registerOnce.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			registerErr = err
			return
		}

		data, err := doc.MarshalJSON()
		if err != nil {
			registerErr = err
			return
		}

		swag.Register(swag.Name, swaggerJSON{doc: string(data)})
	})
	return registerErr
}
