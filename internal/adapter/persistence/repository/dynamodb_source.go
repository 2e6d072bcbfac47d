package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB caps BatchWriteItem at 25 requests.
const dynamoBatchSize = 25

const maxUnprocessedRetries = 5

// DynamoAPI is the subset of the DynamoDB client used by the record store.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Items are the record marshalled through its dynamodbav tags plus a
// position attribute.
//
// Table requirements:
//   - PK: id (string)
//
// position keeps the collection order since Scan returns items in hash order.
const positionAttr = "position"

type dynamoSource[T record[T]] struct {
	ddb       DynamoAPI
	tableName string
}

func newDynamoSource[T record[T]](ddb DynamoAPI, tableName string) *dynamoSource[T] {
	return &dynamoSource[T]{ddb: ddb, tableName: tableName}
}

func (s *dynamoSource[T]) Read(ctx context.Context) ([]T, error) {
	items, err := s.scan(ctx)
	if err != nil {
		var rnf *types.ResourceNotFoundException
		if errors.As(err, &rnf) {
			return nil, fmt.Errorf("%w: %w: table %s", ErrStoreUnavailable, ErrStoreEmpty, s.tableName)
		}
		return nil, unavailable("scan "+s.tableName, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %w: table %s", ErrStoreUnavailable, ErrStoreEmpty, s.tableName)
	}

	type positioned struct {
		pos int
		rec T
	}
	decoded := make([]positioned, 0, len(items))
	for _, item := range items {
		id := idAttr(item)
		pos, err := decodePosition(item[positionAttr])
		if err != nil {
			return nil, unavailable("decode position of "+id, err)
		}
		var rec T
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, unavailable("decode "+id, err)
		}
		decoded = append(decoded, positioned{pos: pos, rec: rec})
	}
	sort.SliceStable(decoded, func(i, j int) bool { return decoded[i].pos < decoded[j].pos })

	out := make([]T, len(decoded))
	for i, d := range decoded {
		out[i] = d.rec
	}
	return out, nil
}

func (s *dynamoSource[T]) scan(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	var (
		out      []map[string]types.AttributeValue
		startKey map[string]types.AttributeValue
	)
	for {
		page, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.tableName),
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

// WriteAll deletes every stored record that is not part of items and puts
// the new collection in batches.
func (s *dynamoSource[T]) WriteAll(ctx context.Context, items []T) error {
	existing, err := s.scan(ctx)
	if err != nil {
		var rnf *types.ResourceNotFoundException
		if !errors.As(err, &rnf) {
			return unavailable("scan "+s.tableName, err)
		}
	}

	keep := make(map[string]struct{}, len(items))
	requests := make([]types.WriteRequest, 0, len(items)+len(existing))
	for i, rec := range items {
		av, err := s.marshal(rec, i)
		if err != nil {
			return err
		}
		keep[rec.GetID()] = struct{}{}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	for _, item := range existing {
		id := idAttr(item)
		if _, ok := keep[id]; ok {
			continue
		}
		requests = append(requests, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		}})
	}

	for start := 0; start < len(requests); start += dynamoBatchSize {
		end := start + dynamoBatchSize
		if end > len(requests) {
			end = len(requests)
		}
		if err := s.batchWrite(ctx, requests[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (s *dynamoSource[T]) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{s.tableName: requests}
	for attempt := 0; attempt <= maxUnprocessedRetries; attempt++ {
		out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return unavailable("batch write "+s.tableName, err)
		}
		if len(out.UnprocessedItems[s.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
	}
	return unavailable("batch write "+s.tableName, errors.New("unprocessed items left after retries"))
}

func (s *dynamoSource[T]) WriteOne(ctx context.Context, items []T, index int) error {
	if index < 0 || index >= len(items) {
		return unavailable("put "+s.tableName, fmt.Errorf("index %d out of range", index))
	}
	av, err := s.marshal(items[index], index)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return unavailable("put "+s.tableName, err)
	}
	return nil
}

func (s *dynamoSource[T]) marshal(rec T, position int) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, unavailable("marshal "+rec.GetID(), err)
	}
	av[positionAttr] = &types.AttributeValueMemberN{Value: strconv.Itoa(position)}
	return av, nil
}

func idAttr(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func decodePosition(av types.AttributeValue) (int, error) {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("want number attribute, got %T", av)
	}
	return strconv.Atoi(n.Value)
}
