package importer

// Canonical field keys shared by the import schemas.
const (
	KeyName         = "name"
	KeyNIS          = "nis"
	KeyNIP          = "nip"
	KeyGender       = "gender"
	KeyBirthDate    = "birth_date"
	KeyClass        = "class"
	KeyGuardian     = "guardian_name"
	KeyGuardianTel  = "guardian_phone"
	KeyPhone        = "phone"
	KeyEmail        = "email"
	KeySubject      = "subject"
	KeyTeacher      = "teacher"
	KeyDay          = "day"
	KeyPeriod       = "period"
	KeySemester     = "semester"
	KeyAcademicYear = "academic_year"
)

// StudentSchema maps student import sheets. Header spellings collected
// from the templates schools actually upload.
var StudentSchema = Schema{Fields: []Field{
	{Key: KeyName, Required: true, Synonyms: []string{"nama", "name", "nama siswa", "student name"}},
	{Key: KeyNIS, Required: true, Synonyms: []string{"nis", "nisn", "no induk", "nomor induk"}},
	{Key: KeyClass, Synonyms: []string{"kelas", "class", "nama kelas"}},
	{Key: KeyGender, Synonyms: []string{"jk", "jenis kelamin", "gender", "l/p"}},
	{Key: KeyBirthDate, Synonyms: []string{"tanggal lahir", "tgl lahir", "tgl_lahir", "birth date"}},
	{Key: KeyGuardian, Synonyms: []string{"nama wali", "wali", "orang tua", "guardian"}},
	{Key: KeyGuardianTel, Synonyms: []string{"no hp wali", "telepon wali", "no hp", "phone"}},
	{Key: KeyEmail, Synonyms: []string{"email", "e-mail", "surel"}},
}}

// TeacherSchema maps teacher import sheets.
var TeacherSchema = Schema{Fields: []Field{
	{Key: KeyName, Required: true, Synonyms: []string{"nama", "name", "nama guru", "teacher name"}},
	{Key: KeyNIP, Required: true, Synonyms: []string{"nip", "no induk", "nomor induk", "nomor induk pegawai"}},
	{Key: KeyEmail, Synonyms: []string{"email", "e-mail", "surel"}},
	{Key: KeyPhone, Synonyms: []string{"no hp", "telepon", "phone", "no telp"}},
	{Key: KeySubject, Synonyms: []string{"mata pelajaran", "mapel", "subject"}},
}}

// ScheduleSchema maps teaching-schedule import sheets. Every field is a
// reference resolved against the database by name.
var ScheduleSchema = Schema{Fields: []Field{
	{Key: KeyTeacher, Required: true, Synonyms: []string{"guru", "nama guru", "teacher", "pengajar"}},
	{Key: KeyClass, Required: true, Synonyms: []string{"kelas", "class", "nama kelas"}},
	{Key: KeySubject, Required: true, Synonyms: []string{"mata pelajaran", "mapel", "subject"}},
	{Key: KeyDay, Required: true, Synonyms: []string{"hari", "day"}},
	{Key: KeyPeriod, Required: true, Synonyms: []string{"jam ke", "jam", "periode", "period"}},
	{Key: KeySemester, Synonyms: []string{"semester"}},
	{Key: KeyAcademicYear, Synonyms: []string{"tahun ajaran", "tahun", "ta", "academic year"}},
}}
