package models

// Hardcoded fallback record. A record loaded from storage is always merged
// against these values before rendering, so a missing field can never break
// the guest view.
var defaultInvitationData = InvitationData{
	GroomName:   "Anh Tú",
	GroomFather: "Ông Cấn Văn An",
	GroomMother: "Bà Nguyễn Thị Hải",
	BrideName:   "Diệu Nhi",
	BrideFather: "Ông Trần Văn A",
	BrideMother: "Bà Nguyễn Thị B",
	Date:        "2025-02-15",
	Time:        "10:00",
	Location:    "The ADORA Center",
	Address:     "431 Hoàng Văn Thụ, Phường 4, Tân Bình, Hồ Chí Minh",
	Message:     "Hân hạnh được đón tiếp quý khách đến chung vui cùng gia đình chúng tôi.",
	ImageURL:    "https://statics.pancake.vn/web-media/ab/56/c3/d2/placeholder-main.jpeg",
	MapURL:      "https://maps.google.com",
	MapImageURL: "https://statics.pancake.vn/web-media/f9/98/70/54/placeholder-map.png",
	QRCodeURL:   "https://statics.pancake.vn/web-media/e2/bc/35/38/placeholder-bank-qr.png",
	BankInfo:    "MBBANK - NGUYEN TAN DAT\n8838683860",
	MusicURL:    "https://statics.pancake.vn/web-media/5e/ee/bf/4a/placeholder-music.mp3",
	CenterImage: "https://statics.pancake.vn/web-media/e2/8c/c5/37/placeholder-center.jpeg",
	FooterImage: "https://statics.pancake.vn/web-media/ad/c0/11/16/placeholder-footer.png",
	AlbumImages: []string{
		"https://statics.pancake.vn/web-media/e9/80/6a/05/placeholder-album-1.png",
		"https://statics.pancake.vn/web-media/09/00/8a/b4/placeholder-album-2.png",
		"https://statics.pancake.vn/web-media/84/b3/f5/cd/placeholder-album-3.png",
		"https://statics.pancake.vn/web-media/60/b1/5e/e9/placeholder-album-4.jpg",
		"https://statics.pancake.vn/web-media/7a/e8/d6/f6/placeholder-album-5.jpg",
	},
	GalleryImages: []string{
		"https://statics.pancake.vn/web-media/21/54/83/cb/placeholder-gallery-1.jfif",
		"https://statics.pancake.vn/web-media/3c/3b/ca/e1/placeholder-gallery-2.jpg",
		"https://statics.pancake.vn/web-media/6f/2b/71/1d/placeholder-gallery-3.jpg",
	},
	LunarDate:    "(Tức Ngày 18 Tháng 01 Năm Ất Tỵ)",
	GroomAddress: "Quận 8, TP. Hồ Chí Minh",
	BrideAddress: "Quận 8, TP. Hồ Chí Minh",
	InvitedTitle: "Trân Trọng Kính Mời",
	AlbumTitle:   "Album Hình Cưới",
	Style:        StyleRedGold,
}

// DefaultInvitationData returns a deep copy of the fallback record.
func DefaultInvitationData() InvitationData {
	d := defaultInvitationData
	d.AlbumImages = append([]string(nil), defaultInvitationData.AlbumImages...)
	d.GalleryImages = append([]string(nil), defaultInvitationData.GalleryImages...)
	d.ElementStyles = map[string]ElementStyle{}
	return d
}

// WithDefaults merges a possibly-partial record against the hardcoded
// fallbacks and returns a complete record. Empty string fields fall back,
// empty slot arrays fall back wholesale, and style overrides merge key-wise
// on top of the defaults. The input is not mutated.
func WithDefaults(partial InvitationData) InvitationData {
	out := DefaultInvitationData()

	fallback := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	fallback(&out.GroomName, partial.GroomName)
	fallback(&out.GroomFather, partial.GroomFather)
	fallback(&out.GroomMother, partial.GroomMother)
	fallback(&out.BrideName, partial.BrideName)
	fallback(&out.BrideFather, partial.BrideFather)
	fallback(&out.BrideMother, partial.BrideMother)
	fallback(&out.Date, partial.Date)
	fallback(&out.Time, partial.Time)
	fallback(&out.Location, partial.Location)
	fallback(&out.Address, partial.Address)
	fallback(&out.Message, partial.Message)
	fallback(&out.ImageURL, partial.ImageURL)
	fallback(&out.MapURL, partial.MapURL)
	fallback(&out.MapImageURL, partial.MapImageURL)
	fallback(&out.QRCodeURL, partial.QRCodeURL)
	fallback(&out.BankInfo, partial.BankInfo)
	fallback(&out.MusicURL, partial.MusicURL)
	fallback(&out.GoogleSheetURL, partial.GoogleSheetURL)
	fallback(&out.GoogleSheetViewURL, partial.GoogleSheetViewURL)
	fallback(&out.CenterImage, partial.CenterImage)
	fallback(&out.FooterImage, partial.FooterImage)
	fallback(&out.LunarDate, partial.LunarDate)
	fallback(&out.GroomAddress, partial.GroomAddress)
	fallback(&out.BrideAddress, partial.BrideAddress)
	fallback(&out.InvitedTitle, partial.InvitedTitle)
	fallback(&out.AlbumTitle, partial.AlbumTitle)

	if len(partial.AlbumImages) > 0 {
		out.AlbumImages = append([]string(nil), partial.AlbumImages...)
	}
	if len(partial.GalleryImages) > 0 {
		out.GalleryImages = append([]string(nil), partial.GalleryImages...)
	}
	for key, st := range partial.ElementStyles {
		out.ElementStyles[key] = st
	}
	if partial.Style != "" {
		out.Style = partial.Style
	}

	return out
}

// ApplyGuestName substitutes a personalized greeting into the projection
// without touching the stored record. An empty name is a no-op.
func ApplyGuestName(data InvitationData, guestName string) InvitationData {
	if guestName == "" {
		return data
	}
	data.InvitedTitle = "Trân Trọng Kính Mời " + guestName
	return data
}
