package analysisstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/taeho-gwon/mahjong-shanten/internal/appconfig"
)

// Connect dials mongo per conf and returns the target database, pinging it
// before returning so a bad connection string fails at startup.
func Connect(ctx context.Context, conf appconfig.MongoConf) (*mongo.Database, func(context.Context) error, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(conf.URL)
	clientOpts.SetMinPoolSize(uint64(conf.MinPoolSize))
	clientOpts.SetMaxPoolSize(uint64(conf.MaxPoolSize))
	if conf.Username != "" && conf.Password != "" {
		clientOpts.SetAuth(options.Credential{Username: conf.Username, Password: conf.Password})
	}

	client, err := mongo.Connect(dialCtx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("analysisstore: connecting to mongo: %w", err)
	}
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("analysisstore: pinging mongo: %w", err)
	}

	return client.Database(conf.Db), client.Disconnect, nil
}
