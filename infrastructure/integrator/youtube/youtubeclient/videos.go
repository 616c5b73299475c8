package youtubeclient

import (
	"context"
	"net/url"
	"strings"

	youtubedomain "github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/youtube/domain"
)

// GetVideoStatistics busca os contadores de até 50 vídeos numa única chamada
func (c *YouTubeClient) GetVideoStatistics(ctx context.Context, videoIDs []string) (*youtubedomain.VideoListResponse, error) {
	if len(videoIDs) == 0 {
		return &youtubedomain.VideoListResponse{Items: []youtubedomain.VideoItem{}}, nil
	}

	params := url.Values{}
	params.Set("part", "statistics")
	params.Set("id", strings.Join(videoIDs, ","))

	var resp youtubedomain.VideoListResponse
	if err := c.get(ctx, "videos", params, VideoListCost, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
