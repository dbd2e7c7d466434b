package record

import (
	"github.com/recview/recview/internal/languages"
	"github.com/recview/recview/internal/playback"
)

// subtitleTrackLabels maps each subtitle language code in the plan to its
// display name. Plan tracks carry the raw code as their label; the page
// runtime consults this map so the browser's track menu shows "English"
// rather than "en".
func subtitleTrackLabels(plan playback.Plan) map[string]string {
	labels := make(map[string]string)
	for _, tr := range plan.Tracks {
		if tr.Kind != playback.TrackSubtitle || tr.Language == "" {
			continue
		}
		labels[tr.Language] = languages.Name(tr.Language)
	}
	return labels
}

// playerCSS contains the shared styles for the record player surface. Both
// the full page and the embed page include it inside a nonce'd style tag.
const playerCSS = `
        .player-wrapper {
            position: relative;
            width: 100%;
            background: #000;
        }
        .player-wrapper.fluid { height: 100%; }
        .player-wrapper.responsive { aspect-ratio: 16 / 9; }
        video {
            width: 100%;
            height: 100%;
            object-fit: contain;
            display: block;
        }
        .player-title-overlay {
            position: absolute;
            top: 0;
            left: 0;
            right: 0;
            padding: 14px 16px 28px;
            background: linear-gradient(rgba(0, 0, 0, 0.7), transparent);
            color: #fff;
            font-size: 15px;
            font-weight: 600;
            white-space: nowrap;
            overflow: hidden;
            text-overflow: ellipsis;
            z-index: 2;
            pointer-events: none;
            transition: opacity 0.25s;
        }
        .player-title-overlay.hidden { opacity: 0; }`

// playerRuntimeJS drives the video element from the serialized plan: source
// and track wiring, one-shot clip bounds on the first durationchange, the
// title overlay, and the view beacon. The beacon treats any status below 400
// as reported and stays armed across failed attempts.
const playerRuntimeJS = `
        (function() {
            var video = document.getElementById('player');
            if (!video) return;

            video.src = plan.source.uri;
            if (plan.poster) video.poster = plan.poster;
            video.autoplay = plan.flags.autoplay;
            video.loop = plan.flags.loop;
            video.muted = plan.flags.muted;
            video.controls = plan.flags.controls;
            video.preload = 'metadata';

            (plan.tracks || []).forEach(function(t) {
                var el = document.createElement('track');
                el.kind = t.kind;
                el.src = t.uri;
                var label = trackLabels[t.language] || t.label;
                if (label) el.label = label;
                if (t.language) el.srclang = t.language;
                if (t.default) el.default = true;
                video.appendChild(el);
            });

            if (plan.clipStart > 0 || plan.clipEnd > 0) {
                var onDuration = function() {
                    video.removeEventListener('durationchange', onDuration);
                    if (plan.clipStart > 0) video.currentTime = plan.clipStart;
                    if (plan.clipEnd > 0) {
                        video.addEventListener('timeupdate', function() {
                            if (video.currentTime >= plan.clipEnd) video.pause();
                        });
                    }
                };
                video.addEventListener('durationchange', onDuration);
            }

            var overlay = document.querySelector('.player-title-overlay');
            if (overlay) {
                video.addEventListener('play', function() { overlay.classList.add('hidden'); });
                video.addEventListener('pause', function() { overlay.classList.remove('hidden'); });
            }

            if (plan.reportUrl) {
                var reported = false;
                var onPlay = function() {
                    if (reported) return;
                    fetch(plan.reportUrl).then(function(res) {
                        if (!reported && res.status >= 200 && res.status < 400) {
                            reported = true;
                            video.removeEventListener('play', onPlay);
                        }
                    }).catch(function() {});
                };
                video.addEventListener('play', onPlay);
            }
        })();`
