/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	gserrors "github.com/niehs/gridsearch/errors"
)

// CatalogKeyMap stores every catalog record in one partition, sorted by index name.
var CatalogKeyMap = map[string]string{
	"PK": "CATALOG",
	"SK": "CATALOG#{Key}",
}

// Client is the subset of the DynamoDB API used by DynamodbDataStore.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// ClientOptions configures NewDynamoDBClient.
type ClientOptions struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB as the underlying data store.
type DynamodbDataStore[T any] struct {
	client    Client
	tableName string
	keyMap    map[string]string
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills each template in keyMap with attribute values of entity.
func expandMacros(keyMap map[string]string, entity any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	res := make(map[string]string, len(keyMap))
	var missing []string
	for fieldName, template := range keyMap {
		res[fieldName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			name := strings.Trim(macro, "{}")
			var value string
			switch tv := av[name].(type) {
			case *types.AttributeValueMemberS:
				value = tv.Value
			case *types.AttributeValueMemberN:
				value = tv.Value
			case *types.AttributeValueMemberBOOL:
				value = fmt.Sprintf("%v", tv.Value)
			}
			if value == "" {
				missing = append(missing, name)
			}
			return value
		})
	}
	if len(missing) > 0 {
		return nil, gserrors.NewValidationError(strings.Join(missing, ","), "key attribute is empty")
	}
	return res, nil
}

// expandStringKey replaces every macro in the keyMap templates with key.
func expandStringKey(keyMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(keyMap))
	for field, template := range keyMap {
		expanded[field] = macroPattern.ReplaceAllLiteralString(template, key)
	}
	return expanded
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded key map.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded key map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used when
// both keys are set; otherwise the default AWS credential chain applies.
func NewDynamoDBClient(ctx context.Context, opts ClientOptions) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
// keyMap must define PK and SK templates; a PK without macros enables List.
func NewDynamodbDataStore[T any](client Client, tableName string, keyMap map[string]string) (*DynamodbDataStore[T], error) {
	if client == nil {
		return nil, errors.New("dynamodb client is required")
	}
	if tableName == "" {
		return nil, gserrors.NewValidationError("table", "is required")
	}
	if keyMap["PK"] == "" || keyMap["SK"] == "" {
		return nil, gserrors.NewValidationError("keyMap", "PK and SK templates are required")
	}

	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		keyMap:    keyMap,
	}, nil
}

func (d *DynamodbDataStore[T]) recordType() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// GetOne retrieves a single item using a string key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := buildKeyFromExpanded(expandStringKey(d.keyMap, key))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, gserrors.NewNotFoundError(d.recordType(), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the entity with PK and SK expanded from its own attributes.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(d.keyMap, entity)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// List returns every item in the store's partition, in sort key order.
func (d *DynamodbDataStore[T]) List(ctx context.Context) ([]T, error) {
	pk := d.keyMap["PK"]
	if macroPattern.MatchString(pk) {
		return nil, fmt.Errorf("list requires a static PK, got template %q", pk)
	}

	keyCond := "PK = :pk"
	var (
		results   []T
		startKey  map[string]types.AttributeValue
		firstPage = true
	)
	for firstPage || startKey != nil {
		firstPage = false
		out, err := d.client.Query(ctx, &sdk.QueryInput{
			TableName:              &d.tableName,
			KeyConditionExpression: &keyCond,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: pk},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		page := make([]T, 0, len(out.Items))
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items: %w", err)
		}
		results = append(results, page...)
		startKey = out.LastEvaluatedKey
	}
	return results, nil
}

// Delete removes an item using a string key. A missing item is a NotFoundError.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := buildKeyFromExpanded(expandStringKey(d.keyMap, key))
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &d.tableName,
		Key:                 keyMap,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return gserrors.NewNotFoundError(d.recordType(), key)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}
