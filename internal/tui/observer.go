package tui

import "github.com/mmcdole/freshbites/internal/domain"

// ChannelObserver adapts domain.ChangeObserver to a channel for Bubble Tea.
// Only the newest snapshot matters, so a stale one waiting in the channel is
// replaced rather than queued behind.
type ChannelObserver struct {
	ch chan domain.Snapshot
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{ch: make(chan domain.Snapshot, 1)}
}

// OnChange sends snap to the channel without blocking the store.
func (o *ChannelObserver) OnChange(snap domain.Snapshot) {
	for {
		select {
		case o.ch <- snap:
			return
		default:
			select {
			case <-o.ch:
			default:
			}
		}
	}
}

// Changes returns the channel WaitForChangeCmd reads from
func (o *ChannelObserver) Changes() <-chan domain.Snapshot {
	return o.ch
}

// ThemePresenter forwards theme changes into the program. It implements
// theme.Presenter and never blocks, since it may be called from Update.
type ThemePresenter struct {
	ch chan bool
}

// NewThemePresenter creates a presenter with room for one pending value
func NewThemePresenter() *ThemePresenter {
	return &ThemePresenter{ch: make(chan bool, 1)}
}

// Apply queues dark, replacing any value not yet picked up
func (p *ThemePresenter) Apply(dark bool) {
	for {
		select {
		case p.ch <- dark:
			return
		default:
			select {
			case <-p.ch:
			default:
			}
		}
	}
}

// Updates returns the channel WaitForThemeCmd reads from
func (p *ThemePresenter) Updates() <-chan bool {
	return p.ch
}
