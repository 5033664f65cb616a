package tests

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dench1k1ng/final-web-backend/pkg/translator"
)

const translationFolder = "../../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}
