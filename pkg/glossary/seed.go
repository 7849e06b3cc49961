package glossary

import (
	"context"

	"github.com/sirupsen/logrus"
)

const (
	SeedSource   = "seed"
	seedCategory = "epidemiology"
)

// SeedEntries is the built-in starter glossary.
func SeedEntries() []Entry {
	rows := [][3]string{
		{"Cross-Sectional Study", "دراسة مقطعية عرضية", "دراسة تُقَيِّم حالة عيّنة من السكان في نقطة زمنية واحدة."},
		{"Cohort Study", "دراسة أترابية", "تتبّع مجموعة مشتركة في تعرّض ما مع مقارنة نِتاجات صحية بمرور الوقت."},
		{"Case-Control Study", "دراسة حالة‑شاهد", "مقارنة بين ذوي الحالة ومجموعة شاهد لتقييم العلاقة مع عوامل خطورة سابقة."},
		{"Randomized Clinical Trial", "تجربة سريرية عشوائية", "تقسيم المشاركين عشوائيًا لتقييم فاعلية تدخل طبي تحت ضبط."},
		{"Quasi-Experimental", "شبه تجريبية", "تصميمات تدخلية بلا عشوائية كاملة، تستخدم موازنة أو ضوابط بديلة."},
		{"Odds Ratio", "نسبة الأرجحية", "قياس لارتباط التعرّض بالحدث في الدراسات الحالة‑شاهد."},
		{"Relative Risk", "الخطر النسبي", "نسبة مخاطر الحدث بين مجموعتين (تعرّض مقابل عدم تعرّض)."},
		{"Incidence", "الحدوث", "عدد الحالات الجديدة خلال فترة محددة بين معرّضين للخطر."},
		{"Prevalence", "الانتشار", "عدد كل الحالات الحالية (قديمة/جديدة) في لحظة زمنية محددة."},
		{"Confidence Interval", "فاصل الثقة", "مجال يُرجَّح أن يحتوي القيمة الحقيقية للمعلمة بنسبة معيّنة."},
		{"P-Value", "قيمة P", "احتمال الحصول على نتيجة مثل المرصودة أو أشد إذا كانت الفرضية الصفرية صحيحة."},
		{"Bias", "انحياز", "خطأ منهجي يؤدي لتقدير غير دقيق للارتباط أو الأثر."},
		{"Confounding", "إرباك (التباس)", "تداخل عامل خارجي مرتبط بالتعرّض والنتيجة يشوّه الارتباط."},
		{"Validity", "الصِدق", "مدى قياس الأداة لما يفترض قياسه."},
		{"Reliability", "الثبات", "قابلية القياس لإعطاء نتائج متّسقة عند التكرار."},
	}

	res := make([]Entry, 0, len(rows))
	for _, row := range rows {
		e := NewEntry(row[0], row[1], row[2])
		e.Category = seedCategory
		e.Source = SeedSource
		res = append(res, e)
	}

	return res
}

// Seed fills an empty store with SeedEntries, a non-empty store is left untouched.
func Seed(ctx context.Context, s Store) (int, error) {
	cnt, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}

	if cnt > 0 {
		logrus.WithContext(ctx).Debugf("glossary has %d entries, skipping seed", cnt)
		return 0, nil
	}

	n, err := s.BulkUpsert(ctx, SeedEntries())
	if err != nil {
		return 0, err
	}

	logrus.WithContext(ctx).Infof("seeded glossary with %d entries", n)

	return n, nil
}
