package dom

// Label tables for the host page's own controls, per UI locale. Lookups
// never depend on a single locale: a strategy that matches by label walks
// the whole table, so the engine works whatever language the host UI is
// displayed in. Tables are ordered with English first only because it is
// the most common UI locale, not because matching prefers it.

// addLanguageLabels are the texts the host page puts on the control that
// opens the language picker.
var addLanguageLabels = []string{
	"Add language",
	"Añadir idioma",
	"Agregar idioma",
	"Ajouter une langue",
	"Sprache hinzufügen",
	"Aggiungi lingua",
	"Adicionar idioma",
	"Taal toevoegen",
	"Dodaj język",
	"Dil ekle",
	"Добавить язык",
	"言語を追加",
	"언어 추가",
	"新增语言",
	"添加语言",
	"إضافة لغة",
	"เพิ่มภาษา",
	"Thêm ngôn ngữ",
	"Tambahkan bahasa",
	"Tambah bahasa",
	"Lisää kieli",
	"Lägg till språk",
	"Tilføj sprog",
	"Legg til språk",
}

// translateLabels are texts on the host page's native translate action
// inside the metadata dialog.
var translateLabels = []string{
	"Translate",
	"Traducir",
	"Traduire",
	"Übersetzen",
	"Traduci",
	"Traduzir",
	"Vertalen",
	"Przetłumacz",
	"Çevir",
	"Перевести",
	"翻訳",
	"번역",
	"翻译",
	"ترجمة",
	"แปล",
	"Dịch",
	"Terjemahkan",
	"Käännä",
	"Översätt",
}

// publishLabels cover both explicit publish and plain save, since the host
// page has used both for committing translated metadata.
var publishLabels = []string{
	"Publish",
	"Save",
	"Publicar",
	"Guardar",
	"Publier",
	"Enregistrer",
	"Veröffentlichen",
	"Speichern",
	"Pubblica",
	"Salva",
	"Salvar",
	"Publiceren",
	"Opslaan",
	"Opublikuj",
	"Zapisz",
	"Yayınla",
	"Kaydet",
	"Опубликовать",
	"Сохранить",
	"公開",
	"保存",
	"게시",
	"저장",
	"发布",
	"نشر",
	"حفظ",
	"เผยแพร่",
	"บันทึก",
	"Xuất bản",
	"Lưu",
	"Publikasikan",
	"Simpan",
}

// completionPhrases are substrings (matched case-insensitively) of the
// banner the host page shows once a translation has been applied.
var completionPhrases = []string{
	"translation complete",
	"translation published",
	"translation saved",
	"changes saved",
	"traducción completada",
	"cambios guardados",
	"traduction terminée",
	"modifications enregistrées",
	"übersetzung abgeschlossen",
	"änderungen gespeichert",
	"traduzione completata",
	"tradução concluída",
	"alterações salvas",
	"wijzigingen opgeslagen",
	"tłumaczenie zakończone",
	"çeviri tamamlandı",
	"перевод завершён",
	"изменения сохранены",
	"翻訳が完了",
	"変更を保存しました",
	"번역 완료",
	"변경사항이 저장",
	"翻译完成",
	"已保存更改",
	"تمت الترجمة",
	"แปลเสร็จสมบูรณ์",
	"bản dịch hoàn tất",
	"terjemahan selesai",
	"perubahan disimpan",
}

// markerEmojis appear on translate controls some page variants decorate;
// any one of them on a clickable is a strong translate-trigger signal.
var markerEmojis = []string{"✨", "🤖"}

func textMatchesAnyLabel(text string, labels []string) bool {
	for _, l := range labels {
		if containsFold(text, l) {
			return true
		}
	}
	return false
}
