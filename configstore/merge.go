package configstore

import "github.com/pixelrevive/pixelrevive-api/models"

// Merge overlays a persisted config onto base, field by field. The merge is
// shallow: a non-zero overlay field fully replaces the base field, so a
// persisted PaymentMethods slice wins wholesale over the default slice.
// Zero-value overlay fields (empty string, nil slice, nil map) keep the base
// value, which is how partially shaped legacy documents stay usable.
func Merge(base, overlay models.StoreConfig) models.StoreConfig {
	out := base
	if overlay.StoreName != "" {
		out.StoreName = overlay.StoreName
	}
	if overlay.HeroTitle != "" {
		out.HeroTitle = overlay.HeroTitle
	}
	if overlay.HeroSubtitle != "" {
		out.HeroSubtitle = overlay.HeroSubtitle
	}
	if overlay.FooterText != "" {
		out.FooterText = overlay.FooterText
	}
	if overlay.MainMenu != nil {
		out.MainMenu = overlay.MainMenu
	}
	if overlay.FooterMenu != nil {
		out.FooterMenu = overlay.FooterMenu
	}
	if overlay.PaymentMethods != nil {
		out.PaymentMethods = overlay.PaymentMethods
	}
	if overlay.Bundles != nil {
		out.Bundles = overlay.Bundles
	}
	if overlay.APIKeys != nil {
		out.APIKeys = overlay.APIKeys
	}
	return out
}

// ApplyPatch applies a partial admin update. Nil patch fields leave the
// current value untouched; set fields replace it. Unlike Merge, a set string
// pointer may carry an empty string (clearing footer text is legal).
func ApplyPatch(base models.StoreConfig, patch models.ConfigPatch) models.StoreConfig {
	out := base
	if patch.StoreName != nil {
		out.StoreName = *patch.StoreName
	}
	if patch.HeroTitle != nil {
		out.HeroTitle = *patch.HeroTitle
	}
	if patch.HeroSubtitle != nil {
		out.HeroSubtitle = *patch.HeroSubtitle
	}
	if patch.FooterText != nil {
		out.FooterText = *patch.FooterText
	}
	if patch.MainMenu != nil {
		out.MainMenu = patch.MainMenu
	}
	if patch.FooterMenu != nil {
		out.FooterMenu = patch.FooterMenu
	}
	if patch.PaymentMethods != nil {
		out.PaymentMethods = patch.PaymentMethods
	}
	if patch.Bundles != nil {
		out.Bundles = patch.Bundles
	}
	if patch.APIKeys != nil {
		out.APIKeys = patch.APIKeys
	}
	return out
}
