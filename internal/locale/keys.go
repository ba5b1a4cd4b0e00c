package locale

// Key identifies a localized message.
type Key string

// Message keys present in every language file
const (
	KeyTitle                  Key = "title"
	KeyEnterLink              Key = "enter_link"
	KeySelectVideoFormat      Key = "select_video_format"
	KeySelectAudioFormat      Key = "select_audio_format"
	KeyDownloadButton         Key = "download_button"
	KeySelectAtLeastOneFormat Key = "select_at_least_one_format"
	KeyDownloadCompleted      Key = "download_completed"
	KeyFileDownloadedSuccess  Key = "file_downloaded_success"
	KeySelectValidLocation    Key = "select_valid_location"
	KeyFileNotFound           Key = "file_not_found"
	KeyErrorDownload          Key = "error_download"
	KeyErrorTitle             Key = "error_title"
	KeyLanguagesMenu          Key = "languages_menu"
	KeyLanguageUnavailable    Key = "language_unavailable"
	KeyResolving              Key = "resolving"
	KeyDownloading            Key = "downloading"
	KeyOptionsMenu            Key = "options_menu"
	KeyRevealOnComplete       Key = "reveal_on_complete"
)

// Placeholder names used with Catalog.Format
const (
	ArgErrorMessage = "error_message"
	ArgLanguage     = "language"
	ArgProgress     = "progress"
)

// RequiredKeys lists every key a language file must define.
var RequiredKeys = []Key{
	KeyTitle,
	KeyEnterLink,
	KeySelectVideoFormat,
	KeySelectAudioFormat,
	KeyDownloadButton,
	KeySelectAtLeastOneFormat,
	KeyDownloadCompleted,
	KeyFileDownloadedSuccess,
	KeySelectValidLocation,
	KeyFileNotFound,
	KeyErrorDownload,
	KeyErrorTitle,
	KeyLanguagesMenu,
	KeyLanguageUnavailable,
	KeyResolving,
	KeyDownloading,
	KeyOptionsMenu,
	KeyRevealOnComplete,
}
