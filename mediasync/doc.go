// Package mediasync implements the MediaSync lambda handler. Every invocation
// answers with status 200 and the JSON body {"message": "hello world"},
// whatever the event. API gateway v2 http events pass through a proxy.Router
// first; any other payload, including none at all, is answered directly.
package mediasync
