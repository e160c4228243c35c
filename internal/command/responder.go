package command

import (
	"context"
	"fmt"

	"github.com/hitoshi/morningword/internal/model"
	"github.com/hitoshi/morningword/internal/repository"
)

// 応答文。受信コマンドの結果に応じて返す。
const (
	replyStopped       = `You have been unsubscribed from Selah. We are sorry to see you go. You can always return at selah.app. "The Lord bless you and keep you." - Numbers 6:24`
	replyNotSubscribed = `You are not currently subscribed to Selah.`

	replyAlreadyActive = `You are already subscribed to Selah. Your daily scripture will continue arriving each morning. 🙏`
	replyWelcomeBack   = `Welcome back to Selah. 🙏 Your daily scripture will resume tomorrow morning. "His mercies are new every morning." - Lamentations 3:23`
	replyHowToJoin     = `To subscribe to Selah, visit us at selah.app. Daily scripture. Free always. ✝️`

	replyChangeNotSubscribed = `You are not currently subscribed to Selah. Visit selah.app to subscribe. ✝️`

	replyHelp = "Selah - Daily Scripture by SMS.\n\nCommands:\nSTOP - unsubscribe\nSTART - resubscribe\nChange to [theme] - switch your theme\n\nThemes: Encouragement, Wisdom, Peace, Strength, Faith, Love\n\nVisit selah.app"

	replyDefaultActive   = `Thank you for reaching out. Selah delivers daily scripture to your phone each morning. Reply HELP for options or visit selah.app. 🙏`
	replyDefaultInactive = `Thank you for your message. To subscribe to daily scripture, visit selah.app. Free always. ✝️`
)

// Responder は受信SMSコマンドを購読状態に適用し、応答文を生成する。
type Responder struct {
	repo repository.SubscriberRepository
}

// NewResponder は Responder を生成する。
func NewResponder(repo repository.SubscriberRepository) *Responder {
	return &Responder{repo: repo}
}

// Respond は送信元電話番号と本文からコマンドを解析・適用し、返信本文を返す。
// コマンドの適用に失敗した場合のみエラーを返す。未知の本文はエラーではなく
// 案内文で応答する。
func (r *Responder) Respond(ctx context.Context, from, body string) (string, error) {
	cmd := Parse(body)

	active, err := r.repo.FindActiveByPhone(ctx, from)
	if err != nil {
		return "", fmt.Errorf("購読者の検索に失敗: %w", err)
	}

	switch cmd.Kind {
	case KindStop:
		return r.stop(ctx, active)
	case KindStart:
		return r.start(ctx, from, active)
	case KindChangeTheme:
		return r.changeTheme(ctx, active, cmd.ThemeArg)
	case KindHelp:
		return replyHelp, nil
	default:
		if active != nil {
			return replyDefaultActive, nil
		}
		return replyDefaultInactive, nil
	}
}

func (r *Responder) stop(ctx context.Context, active *model.Subscriber) (string, error) {
	if active == nil {
		return replyNotSubscribed, nil
	}
	if err := r.repo.UpdateActive(ctx, active.ID, false); err != nil {
		return "", fmt.Errorf("購読停止に失敗: %w", err)
	}
	return replyStopped, nil
}

func (r *Responder) start(ctx context.Context, from string, active *model.Subscriber) (string, error) {
	if active != nil {
		return replyAlreadyActive, nil
	}
	prior, err := r.repo.FindByPhone(ctx, from)
	if err != nil {
		return "", fmt.Errorf("購読履歴の検索に失敗: %w", err)
	}
	if prior == nil {
		// 過去の購読記録がなければ再開対象がない。案内のみ返す。
		return replyHowToJoin, nil
	}
	if err := r.repo.UpdateActive(ctx, prior.ID, true); err != nil {
		return "", fmt.Errorf("購読再開に失敗: %w", err)
	}
	return replyWelcomeBack, nil
}

func (r *Responder) changeTheme(ctx context.Context, active *model.Subscriber, arg string) (string, error) {
	if active == nil {
		return replyChangeNotSubscribed, nil
	}
	theme, ok := model.ParseTheme(arg)
	if !ok {
		return fmt.Sprintf(`"%s" is not a valid theme. Available themes: Encouragement, Wisdom, Peace, Strength, Faith, Love.`, arg), nil
	}
	if err := r.repo.UpdateTheme(ctx, active.ID, theme); err != nil {
		return "", fmt.Errorf("テーマ変更に失敗: %w", err)
	}
	return fmt.Sprintf(`Done. Your daily theme has been updated to %s. Starting tomorrow morning your verses will reflect this. 🙏`, theme), nil
}
