package main

import (
	"bytes"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
uploadReportToS3 archives a rendered report under s3://bucket/key using the
default AWS credential chain.
*/
func uploadReportToS3(bucket string, key string, contentType string, data []byte) (e *xerr.Error) {
	awsSession, sessionErr := session.NewSession()
	if sessionErr != nil {
		return xerr.NewError(sessionErr, "create AWS session for S3 upload", bucket)
	}

	uploader := s3manager.NewUploader(awsSession)

	output, uploadErr := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if uploadErr != nil {
		return xerr.NewError(uploadErr, "upload report to S3", map[string]any{"bucket": bucket, "key": key})
	}

	tl.Log(tl.Info1, palette.Green, "Archived report at '%s'", output.Location)

	return e
}
