// Package proxy provides the routing layer for lambda functions that act as
// aws api gateway v2 (http) integrations. A request arrives as an
// events.APIGatewayV2HTTPRequest, is matched against an ordered list of
// routes and answered with an events.APIGatewayProxyResponse.
//
// The router is intentionally small: regex paths, method matching, a catch
// all and an error hook.
package proxy
