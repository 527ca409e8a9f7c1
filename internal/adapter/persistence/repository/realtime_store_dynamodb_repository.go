package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"github.com/rs/zerolog/log"

	"tiembanh_mousse/internal/usecase/interfaces"
)

var ErrInvalidStorePath = errors.New("invalid store path")

// storeItem is the DynamoDB row shape shared by every dashboard collection.
//
// Table requirements (one table per collection):
//   - PK: id (string)
//   - Streams enabled (NEW_IMAGE is enough; we only use events as a change
//     signal and rescan the table for the snapshot)
//
// Documents are persisted as their raw JSON body under "doc" so the schema
// stays as loose as the records themselves.
type storeItem struct {
	ID        string `dynamodbav:"id"`
	Doc       string `dynamodbav:"doc"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RealtimeStoreDynamoRepository implements the document store over DynamoDB.
// Subscribe pushes the current snapshot immediately, then again whenever the
// table's stream reports activity.
type RealtimeStoreDynamoRepository struct {
	ddb          *dynamodb.Client
	streams      *dynamodbstreams.Client
	pollInterval time.Duration
}

var _ interfaces.IRealtimeStore = (*RealtimeStoreDynamoRepository)(nil)

func NewRealtimeStoreDynamoRepository(ddb *dynamodb.Client, streams *dynamodbstreams.Client) *RealtimeStoreDynamoRepository {
	return &RealtimeStoreDynamoRepository{
		ddb:          ddb,
		streams:      streams,
		pollInterval: 3 * time.Second,
	}
}

// splitPath accepts "collection" or "collection/key".
func splitPath(path string) (collection, key string, err error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return "", "", ErrInvalidStorePath
		}
		return parts[0], "", nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", ErrInvalidStorePath
		}
		return parts[0], parts[1], nil
	default:
		return "", "", ErrInvalidStorePath
	}
}

func tableName(collection string) string {
	return getenvDefault(strings.ToUpper(collection)+"_TABLE", collection)
}

func (r *RealtimeStoreDynamoRepository) Subscribe(ctx context.Context, path string, onSnapshot func(interfaces.Snapshot)) (func(), error) {
	collection, key, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	if key != "" {
		return nil, ErrInvalidStorePath
	}

	snap, err := r.scanCollection(ctx, collection)
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)
	onSnapshot(snap)

	go r.watch(subCtx, collection, onSnapshot)
	return cancel, nil
}

// watch re-scans and re-pushes the collection whenever its stream shows
// records. When the table has no stream configured it degrades to periodic
// rescans, which keeps local development (dynamodb-local without streams)
// working.
func (r *RealtimeStoreDynamoRepository) watch(ctx context.Context, collection string, onSnapshot func(interfaces.Snapshot)) {
	streamArn, err := r.latestStreamArn(ctx, collection)
	if err != nil || streamArn == "" {
		if err != nil {
			log.Warn().Err(err).Str("collection", collection).Msg("stream lookup failed, falling back to polling")
		}
		r.pollLoop(ctx, collection, onSnapshot)
		return
	}

	iterators := map[string]string{}
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.pollInterval):
		}

		if len(iterators) == 0 {
			iterators, err = r.openShardIterators(ctx, streamArn)
			if err != nil {
				log.Warn().Err(err).Str("collection", collection).Msg("shard iterators failed")
				continue
			}
		}

		// Every open shard is tailed; a write can land on any of them.
		active := false
		for shardID, iterator := range iterators {
			out, err := r.streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{
				ShardIterator: aws.String(iterator),
			})
			if err != nil {
				// Expired/rotated shard: reopen the set on the next tick.
				delete(iterators, shardID)
				continue
			}
			if out.NextShardIterator != nil {
				iterators[shardID] = *out.NextShardIterator
			} else {
				delete(iterators, shardID)
			}
			if len(out.Records) > 0 {
				active = true
			}
		}
		if !active {
			continue
		}

		snap, err := r.scanCollection(ctx, collection)
		if err != nil {
			log.Error().Err(err).Str("collection", collection).Msg("rescan after stream event failed")
			continue
		}
		onSnapshot(snap)
	}
}

func (r *RealtimeStoreDynamoRepository) pollLoop(ctx context.Context, collection string, onSnapshot func(interfaces.Snapshot)) {
	const rescanEvery = 30 * time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(rescanEvery):
		}
		snap, err := r.scanCollection(ctx, collection)
		if err != nil {
			continue
		}
		onSnapshot(snap)
	}
}

func (r *RealtimeStoreDynamoRepository) latestStreamArn(ctx context.Context, collection string) (string, error) {
	out, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName(collection)),
	})
	if err != nil {
		return "", err
	}
	if out.Table == nil || out.Table.LatestStreamArn == nil {
		return "", nil
	}
	return *out.Table.LatestStreamArn, nil
}

// openShardIDs keeps the shards that can still receive writes. A shard with
// an ending sequence number is closed and only holds history, which the
// change signal does not need.
func openShardIDs(shards []streamtypes.Shard) []string {
	ids := make([]string, 0, len(shards))
	for _, shard := range shards {
		if shard.ShardId == nil {
			continue
		}
		if shard.SequenceNumberRange != nil && shard.SequenceNumberRange.EndingSequenceNumber != nil {
			continue
		}
		ids = append(ids, *shard.ShardId)
	}
	return ids
}

// openShardIterators opens a LATEST iterator on every open shard. LATEST is
// fine because every event only triggers a full rescan.
func (r *RealtimeStoreDynamoRepository) openShardIterators(ctx context.Context, streamArn string) (map[string]string, error) {
	desc, err := r.streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
		StreamArn: aws.String(streamArn),
	})
	if err != nil {
		return nil, err
	}
	if desc.StreamDescription == nil {
		return nil, errors.New("stream has no description")
	}

	iterators := map[string]string{}
	for _, shardID := range openShardIDs(desc.StreamDescription.Shards) {
		it, err := r.streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
			StreamArn:         aws.String(streamArn),
			ShardId:           aws.String(shardID),
			ShardIteratorType: streamtypes.ShardIteratorTypeLatest,
		})
		if err != nil || it.ShardIterator == nil {
			continue
		}
		iterators[shardID] = *it.ShardIterator
	}
	if len(iterators) == 0 {
		return nil, errors.New("stream has no open shards")
	}
	return iterators, nil
}

func (r *RealtimeStoreDynamoRepository) scanCollection(ctx context.Context, collection string) (interfaces.Snapshot, error) {
	snap := interfaces.Snapshot{}
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(tableName(collection)),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			var it storeItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil || it.ID == "" {
				continue
			}
			snap[it.ID] = json.RawMessage(it.Doc)
		}
	}
	return snap, nil
}

func (r *RealtimeStoreDynamoRepository) FetchOnce(ctx context.Context, path string) (json.RawMessage, error) {
	collection, key, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	if key == "" {
		snap, err := r.scanCollection(ctx, collection)
		if err != nil {
			return nil, err
		}
		return json.Marshal(snap)
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName(collection)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return json.RawMessage(it.Doc), nil
}

func (r *RealtimeStoreDynamoRepository) Write(ctx context.Context, path string, value interface{}) error {
	collection, key, err := splitPath(path)
	if err != nil {
		return err
	}
	if key == "" {
		return ErrInvalidStorePath
	}

	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(storeItem{
		ID:        key,
		Doc:       string(doc),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tableName(collection)),
		Item:      av,
	})
	return err
}

// Patch merges top-level fields into the stored document. Read-modify-write
// is fine here: the dashboard has a single writer per record.
func (r *RealtimeStoreDynamoRepository) Patch(ctx context.Context, path string, partial map[string]interface{}) error {
	current, err := r.FetchOnce(ctx, path)
	if err != nil {
		return err
	}

	merged := map[string]interface{}{}
	if len(current) > 0 {
		_ = json.Unmarshal(current, &merged)
	}
	for k, v := range partial {
		merged[k] = v
	}
	return r.Write(ctx, path, merged)
}

func (r *RealtimeStoreDynamoRepository) Delete(ctx context.Context, path string) error {
	collection, key, err := splitPath(path)
	if err != nil {
		return err
	}
	if key == "" {
		return ErrInvalidStorePath
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName(collection)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
