package data

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"

	"github.com/pramanalabs/pramana/models"
)

// ApplyCloudSecret overwrites the database credentials in cfg with the ones
// stored in AWS Secrets Manager under cfg.CloudSecret. A config with no
// cloud secret set is returned untouched, so local runs never hit AWS.
func ApplyCloudSecret(cfg models.Config) models.Config {
	if cfg.CloudSecret == "" {
		return cfg
	}
	secretFile := getSecret(cfg.CloudSecret)
	var secret models.Secret
	json.Unmarshal([]byte(secretFile), &secret)
	if secret.Host != "" {
		cfg.DBHost = secret.Host
	}
	if secret.User != "" {
		cfg.DBUser = secret.User
	}
	if secret.Password != "" {
		cfg.DBPassword = secret.Password
	}
	return cfg
}

func getSecret(secretName string) string {
	svc := secretsmanager.New(session.New(), aws.NewConfig().WithRegion("us-west-1"))
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"), // VersionStage defaults to AWSCURRENT if unspecified
	}

	result, err := svc.GetSecretValue(input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			fmt.Println(aerr.Code(), aerr.Error())
		} else {
			fmt.Println(err.Error())
		}
		return "error"
	}

	if result.SecretString != nil {
		return *result.SecretString
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(result.SecretBinary)))
	n, err := base64.StdEncoding.Decode(decoded, result.SecretBinary)
	if err != nil {
		fmt.Println("Base64 Decode Error:", err)
		return "error"
	}
	return string(decoded[:n])
}
