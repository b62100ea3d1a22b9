package lambdautils

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// LambdaMetaData stores details about the current lambda context.
type LambdaMetaData struct {
	FunctionName    string
	FunctionVersion string
	LogGroupName    string
	LogStreamName   string
	MemoryLimitInMB int
	Context         *lambdacontext.LambdaContext
}

// GetLambdaMetaData returns MetaData extracted from the current lambda context.
// Context is nil when ctx was not created by the lambda runtime.
func GetLambdaMetaData(ctx context.Context) LambdaMetaData {
	lm := LambdaMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	if ctx != nil {
		lm.Context, _ = lambdacontext.FromContext(ctx)
	}

	return lm
}

// Fields renders the metadata as log fields. Empty values are skipped so
// local invocations don't log blanks.
func (lm LambdaMetaData) Fields() logrus.Fields {
	fields := logrus.Fields{}

	add := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	add("function", lm.FunctionName)
	add("version", lm.FunctionVersion)

	if lm.Context != nil {
		add("request_id", lm.Context.AwsRequestID)
		add("function_arn", lm.Context.InvokedFunctionArn)
	}

	return fields
}

// Logger returns an entry of base carrying the invocation metadata of ctx.
func Logger(ctx context.Context, base logrus.FieldLogger) *logrus.Entry {
	return base.WithFields(GetLambdaMetaData(ctx).Fields())
}
