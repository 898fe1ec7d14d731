package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrConnect wraps broker connection failures so that main can map them to
// a dedicated exit code.
var ErrConnect = fmt.Errorf("broker connection failed")

type playMediaCommand struct {
	MediaContentID string `json:"media_content_id"`
}

// PlayMediaTopic returns the command topic for the given device name. The
// device name is inserted as-is, without any escaping.
func PlayMediaTopic(device string) string {
	return fmt.Sprintf("ghost-tube/media_player/%s/playmedia", device)
}

// BuildPayload formats the outgoing message body. In JSON mode the video ID
// is wrapped in a single-key playmedia command object, otherwise it is sent
// unchanged.
func BuildPayload(videoID string, asJSON bool) ([]byte, error) {
	if !asJSON {
		return []byte(videoID), nil
	}
	return json.Marshal(playMediaCommand{MediaContentID: videoID})
}

type PlayMediaService interface {
	Run(ctx context.Context) error
}

type PlayMediaServiceParams struct {
	MQTTClient MQTTClient

	Device      string
	VideoID     string
	QoS         byte
	Retain      bool
	JSONPayload bool

	Log zerolog.Logger
}

type playMediaService struct {
	params PlayMediaServiceParams

	log zerolog.Logger
}

func NewPlayMediaService(params PlayMediaServiceParams) (PlayMediaService, error) {
	if params.MQTTClient == nil {
		return nil, fmt.Errorf("MQTTClient is nil")
	}
	if params.Device == "" {
		return nil, fmt.Errorf("device name is empty")
	}
	if params.VideoID == "" {
		return nil, fmt.Errorf("video id is empty")
	}
	return &playMediaService{params: params, log: params.Log}, nil
}

// Run performs the single connect-publish-disconnect cycle. The connection
// is closed on every path once it has been established.
func (p playMediaService) Run(ctx context.Context) error {
	topic := PlayMediaTopic(p.params.Device)
	payload, err := BuildPayload(p.params.VideoID, p.params.JSONPayload)
	if err != nil {
		return err
	}

	if err := p.params.MQTTClient.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer p.params.MQTTClient.Disconnect()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p.log.Info().
			Str("topic", topic).
			Uint8("qos", p.params.QoS).
			Bool("retain", p.params.Retain).
			Msg("publishing")

		return p.params.MQTTClient.Publish(gctx, topic, p.params.QoS, p.params.Retain, payload)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	status := p.params.MQTTClient.Status()
	p.log.Info().
		Uint64("msg_count", status.MessageCount).
		Time("last_time_published", status.LastTimePublished).
		Msg("publish acknowledged")
	return nil
}
