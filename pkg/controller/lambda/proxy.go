package lambda

import (
	"net/http"

	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// NewProxyHandler adapts API Gateway proxy events onto an HTTP handler, so
// the same router serves both the HTTP server and Lambda. Pass
// (*httpadapter.HandlerAdapter).ProxyWithContext to lambda.Start.
func NewProxyHandler(handler http.Handler) *httpadapter.HandlerAdapter {
	return httpadapter.New(handler)
}
