package proxy

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// ContentTypeJSON is the content type set on every response built by JSON.
const ContentTypeJSON = "application/json"

// MessageBody is the body shape shared by success and failure responses.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON returns a response with v marshalled into the body. The error is the
// json.Marshal error of v, so values built only from strings, numbers, bools,
// string keyed maps and structs of those never fail.
func JSON(status int, v interface{}) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrapf(err, "failed marshalling %T response body", v)
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      status,
		Headers:         map[string]string{"Content-Type": ContentTypeJSON},
		Body:            string(b),
		IsBase64Encoded: false,
	}, nil
}

// Message returns a response whose body is {"message": msg}.
func Message(status int, msg string) events.APIGatewayProxyResponse {
	response, _ := JSON(status, MessageBody{Message: msg})
	return response
}
