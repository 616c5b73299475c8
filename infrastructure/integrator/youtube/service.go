package youtube

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	youtubedomain "github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

const sourceName = "youtube"

type YouTubeIntegrator struct {
	cfg    *config.Config
	Client youtubeclient.Client
}

func New(cfg *config.Config, client youtubeclient.Client) *YouTubeIntegrator {
	return &YouTubeIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetVideosWithStats lista os vídeos do canal e anexa as estatísticas de cada um.
// Vídeos sem estatísticas na resposta seguem com Stats nil.
func (s *YouTubeIntegrator) GetVideosWithStats(ctx context.Context, channelID string) ([]domain.VideoRecord, error) {
	if channelID == "" {
		channelID = s.cfg.YouTube.ChannelID
	}

	search, err := s.Client.SearchChannelVideos(ctx, channelID, s.cfg.YouTube.MaxResults)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channel_id": channelID,
			"error":      err.Error(),
		}).Error("youtube: falha ao buscar vídeos do canal")
		return nil, domain.NewUpstreamError(sourceName, errors.Wrap(err, "erro ao buscar vídeos do canal"))
	}

	videos := make([]domain.VideoRecord, 0, len(search.Items))
	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID == "" {
			continue
		}

		ids = append(ids, item.ID.VideoID)
		videos = append(videos, FactoryVideoRecord(item))
	}

	if len(ids) == 0 {
		logrus.WithField("channel_id", channelID).Info("youtube: canal sem vídeos")
		return videos, nil
	}

	stats, err := s.Client.GetVideoStatistics(ctx, ids)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channel_id": channelID,
			"videos":     len(ids),
			"error":      err.Error(),
		}).Error("youtube: falha ao buscar estatísticas dos vídeos")
		return nil, domain.NewUpstreamError(sourceName, errors.Wrap(err, "erro ao buscar estatísticas dos vídeos"))
	}

	byID := make(map[string]youtubedomain.Statistics, len(stats.Items))
	for _, item := range stats.Items {
		byID[item.ID] = item.Statistics
	}

	for i := range videos {
		if st, ok := byID[videos[i].VideoID]; ok {
			videos[i].Stats = &domain.VideoStats{
				ViewCount:    st.ViewCount,
				LikeCount:    st.LikeCount,
				CommentCount: st.CommentCount,
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"channel_id":      channelID,
		"videos":          len(videos),
		"with_stats":      len(byID),
		"remaining_quota": s.Client.RemainingQuota(),
	}).Debug("youtube: vídeos carregados")

	return videos, nil
}

func FactoryVideoRecord(item youtubedomain.SearchResult) domain.VideoRecord {
	return domain.VideoRecord{
		VideoID:      item.ID.VideoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ThumbnailURL: item.Snippet.Thumbnails.BestURL(),
		PublishedAt:  item.Snippet.PublishedAt,
	}
}
