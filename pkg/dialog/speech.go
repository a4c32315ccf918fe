package dialog

// Sounds uploaded to the skill's media storage.
const (
	SoundOpening = "661bc281-2f05-4593-9cad-6a6f9caa3e1c"
	SoundClosing = "bdc67ca3-0972-4599-bc26-dedb90f25c45"
	SoundClock   = "44d33529-856c-42e8-9a0f-f3d60311ef88"
)

var (
	ApplauseSounds = []string{
		"87071461-1456-42f7-8cbd-5a7f2b4e4bd4",
		"6d160340-afe2-4273-94d4-40631584f139",
		"b2eef422-bd6d-485a-a05c-baddeb7e726d",
	}
	SadSounds = []string{
		"79cded5f-1598-4d6e-bbf3-61e9999b092d",
		"c04240a1-8ef6-445a-8f1c-32a042615683",
	}
)

const mediaPrefix = "dialogs-upload/75986b16-ef4a-48ae-95ce-e95c020ae7a3/"

// Pause is a half-second silence in speech markup.
const Pause = "sil <[500]>"

// Sound returns the speech markup playing an uploaded sound.
func Sound(id string) string {
	return `<speaker audio="` + mediaPrefix + id + `.opus">`
}
