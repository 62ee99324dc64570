package db

import (
	"context"
	"net"
	"time"

	"github.com/cbsinteractive/annotate/annotation"
	"github.com/cbsinteractive/annotate/wire"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const annotationSetKey = "annotations"

var exp = 24 * time.Hour * 365 * 10

// Options configures the Redis store.
type Options struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	DB       int    `envconfig:"REDIS_DB"`
	Password string `envconfig:"REDIS_PASSWORD"`
}

// Redis keeps each timestamp as a JSON string under annotation:<id>, with
// the IDs collected in one set.
type Redis struct {
	rc  *redis.Client
	dec annotation.Decoder
	log logrus.FieldLogger
}

// NewRedis returns a Redis store. A missing port defaults to 6379.
func NewRedis(opt *Options, dec annotation.Decoder, log logrus.FieldLogger) *Redis {
	if opt == nil {
		opt = &Options{}
	}
	addr := opt.Addr
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "6379")
	}
	return &Redis{
		rc: redis.NewClient(&redis.Options{
			Addr:     addr,
			DB:       opt.DB,
			Password: opt.Password,
		}),
		dec: dec,
		log: log,
	}
}

func (c *Redis) Put(ctx context.Context, id string, ts annotation.Timestamp) error {
	data, err := encode(ts)
	if err != nil {
		return err
	}
	key := annotationKey(id)
	rc := c.rc.WithContext(ctx)
	err = rc.Watch(func(tx *redis.Tx) error {
		_, err := tx.TxPipelined(func(pipe redis.Pipeliner) error {
			pipe.Set(key, data, exp)
			pipe.SAdd(annotationSetKey, id)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return errors.Wrapf(err, "saving annotation %s", id)
	}
	c.log.WithFields(logrus.Fields{"id": id, "kind": ts.Kind()}).Debug("annotation saved")
	return nil
}

func (c *Redis) Get(ctx context.Context, id string) (annotation.Timestamp, error) {
	val, err := c.rc.WithContext(ctx).Get(annotationKey(id)).Result()
	if err == redis.Nil {
		return annotation.Timestamp{}, ErrNotFound
	} else if err != nil {
		return annotation.Timestamp{}, errors.Wrapf(err, "loading annotation %s", id)
	}
	return c.decode(id, val)
}

func (c *Redis) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := c.rc.WithContext(ctx).TxPipelined(func(pipe redis.Pipeliner) error {
		del = pipe.Del(annotationKey(id))
		pipe.SRem(annotationSetKey, id)
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "deleting annotation %s", id)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Redis) List(ctx context.Context) ([]Entry, error) {
	rc := c.rc.WithContext(ctx)
	ids, err := rc.SMembers(annotationSetKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "listing annotations")
	}
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		val, err := rc.Get(annotationKey(id)).Result()
		if err == redis.Nil {
			// expired or deleted by another client; the set entry is stale
			c.log.WithField("id", id).Warn("annotation listed but missing")
			continue
		} else if err != nil {
			return nil, errors.Wrapf(err, "loading annotation %s", id)
		}
		ts, err := c.decode(id, val)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: id, Timestamp: ts})
	}
	sortEntries(entries)
	return entries, nil
}

func (c *Redis) Close() error {
	return c.rc.Close()
}

func (c *Redis) decode(id, val string) (annotation.Timestamp, error) {
	m, err := wire.Parse([]byte(val))
	if err != nil {
		return annotation.Timestamp{}, errors.Wrapf(err, "annotation %s", id)
	}
	ts, err := c.dec.Decode(m)
	if err != nil {
		return annotation.Timestamp{}, errors.Wrapf(err, "annotation %s", id)
	}
	return ts, nil
}

func annotationKey(id string) string {
	return "annotation:" + id
}
